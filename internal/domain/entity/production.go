package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/domain/milling"
)

// ProductionRecord corrida de producción: consume materia prima y genera producto terminado.
// ConversionRate se recalcula en SetQuantities; no se asigna de forma independiente.
type ProductionRecord struct {
	ID                string
	Number            string // PR-2026-00001
	Date              time.Time
	RawProductID      string
	FinishedProductID string
	InputQuantity     decimal.Decimal
	OutputQuantity    decimal.Decimal
	WasteQuantity     decimal.Decimal // solo informativo, no mueve existencias
	ConversionRate    decimal.Decimal
	MachineID         string // opcional
	OperatorID        string // opcional
	Notes             string
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// SetQuantities asigna las cantidades y recalcula la tasa de conversión.
func (p *ProductionRecord) SetQuantities(input, output, waste decimal.Decimal) {
	p.InputQuantity = input
	p.OutputQuantity = output
	p.WasteQuantity = waste
	p.ConversionRate = milling.ConversionRate(input, output)
}

// WastePercent porcentaje de merma sobre la entrada.
func (p *ProductionRecord) WastePercent() decimal.Decimal {
	return milling.WastePercent(p.InputQuantity, p.WasteQuantity)
}
