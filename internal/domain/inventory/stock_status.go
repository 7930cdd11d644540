package inventory

import "github.com/shopspring/decimal"

// StockStatus estado derivado de una entrada del libro de existencias.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "OUT_OF_STOCK"
	StatusLowStock   StockStatus = "LOW_STOCK"
	StatusOverstock  StockStatus = "OVERSTOCK"
	StatusNormal     StockStatus = "NORMAL"
)

// Classify clasifica la cantidad frente a los niveles mínimo y máximo (max = 0 sin tope).
// Orden de evaluación: agotado, bajo, sobre-stock, normal. Con niveles mal configurados
// (min >= max) nunca se reportan estados contradictorios.
func Classify(quantity, min, max decimal.Decimal) StockStatus {
	switch {
	case quantity.LessThanOrEqual(decimal.Zero):
		return StatusOutOfStock
	case quantity.LessThanOrEqual(min):
		return StatusLowStock
	case max.GreaterThan(decimal.Zero) && quantity.GreaterThanOrEqual(max):
		return StatusOverstock
	default:
		return StatusNormal
	}
}

// NeedsReplenishment indica si el estado amerita reposición (agotado o bajo).
func (s StockStatus) NeedsReplenishment() bool {
	return s == StatusOutOfStock || s == StatusLowStock
}
