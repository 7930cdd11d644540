package pdf

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/application/reporting"
	"github.com/jhoicas/molino-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "25.000", formatMoney(decimal.NewFromInt(25000)))
	assert.Equal(t, "1.000.000", formatMoney(decimal.NewFromInt(1000000)))
	assert.Equal(t, "999", formatMoney(decimal.NewFromInt(999)))
	assert.Equal(t, "-1.200", formatMoney(decimal.NewFromInt(-1200)))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "1.250,50", formatQuantity(decimal.RequireFromString("1250.5")))
	assert.Equal(t, "650", formatQuantity(decimal.NewFromInt(650)))
}

func TestGenerateOrderPDF(t *testing.T) {
	order := &entity.Order{
		ID: "o1", Kind: entity.OrderKindSale, Number: "SO-2026-00001", Date: time.Now(),
		Lines: []entity.OrderLine{entity.NewOrderLine("l1", "o1", "p1", decimal.NewFromInt(10), decimal.NewFromInt(3200))},
	}
	order.RecalculateTotals()

	out, err := NewMarotoPDFGenerator().GenerateOrderPDF(context.Background(), reporting.OrderDocument{
		CompanyName: "Molino San José",
		Order:       order,
		Party:       &entity.Party{Name: "Tienda La 14", TaxID: "900123"},
		Lines:       []reporting.OrderLineForPDF{{OrderLine: order.Lines[0], ProductCode: "ARZ", ProductName: "Arroz blanco", UnitMeasure: "kg"}},
	})
	require.NoError(t, err)
	assert.True(t, len(out) > 4 && string(out[:4]) == "%PDF")
}
