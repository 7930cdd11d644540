// Package milling contiene las reglas de conversión del molino (paddy → arroz blanco).
package milling

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DefaultEfficiencyThreshold porcentaje mínimo de conversión aceptado por defecto.
// Es un valor de configuración, no una constante regulatoria.
var DefaultEfficiencyThreshold = decimal.NewFromInt(65)

// ConversionRate devuelve output/input * 100; 0 si input <= 0.
func ConversionRate(input, output decimal.Decimal) decimal.Decimal {
	if input.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return output.Div(input).Mul(hundred)
}

// WastePercent devuelve waste/input * 100; 0 si input <= 0.
func WastePercent(input, waste decimal.Decimal) decimal.Decimal {
	if input.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return waste.Div(input).Mul(hundred)
}

// IsEfficient indica si la tasa alcanza el umbral (inclusive).
func IsEfficient(rate, threshold decimal.Decimal) bool {
	return rate.GreaterThanOrEqual(threshold)
}
