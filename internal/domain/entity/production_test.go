package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/inventory"
)

func TestProductionRecord_SetQuantitiesRecalculaTasa(t *testing.T) {
	p := &entity.ProductionRecord{}
	p.SetQuantities(dec("1000"), dec("650"), dec("50"))
	assert.True(t, p.ConversionRate.Equal(dec("65")))
	assert.True(t, p.WastePercent().Equal(dec("5")))

	p.SetQuantities(dec("1000"), dec("700"), dec("50"))
	assert.True(t, p.ConversionRate.Equal(dec("70")), "la tasa sigue a las cantidades")
}

func TestStockLedgerEntry_StatusDerivado(t *testing.T) {
	e := &entity.StockLedgerEntry{Quantity: dec("10"), MinLevel: dec("20"), MaxLevel: dec("200")}
	assert.Equal(t, inventory.StatusLowStock, e.Status())

	e.Quantity = dec("150")
	assert.Equal(t, inventory.StatusNormal, e.Status(), "el estado nunca queda desactualizado")
}
