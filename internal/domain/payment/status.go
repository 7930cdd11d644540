// Package payment deriva el estado de pago de órdenes de compra y venta.
package payment

import "github.com/shopspring/decimal"

// Status estado de pago de una orden.
type Status string

const (
	StatusPending Status = "PENDING"
	StatusPartial Status = "PARTIAL"
	StatusPaid    Status = "PAID"
)

// Classify deriva el estado a partir del total y lo pagado.
// paid <= 0 se evalúa primero: una orden en cero sin pagos queda PENDING, no PAID.
// Los sobrepagos se reportan como PAID.
func Classify(total, paid decimal.Decimal) Status {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return StatusPending
	case total.GreaterThan(decimal.Zero) && paid.GreaterThanOrEqual(total):
		return StatusPaid
	default:
		return StatusPartial
	}
}

// Valid indica si s es un estado conocido (filtros de consulta).
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusPartial || s == StatusPaid
}
