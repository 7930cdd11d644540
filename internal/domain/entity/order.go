package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/domain/payment"
)

// OrderKind distingue órdenes de compra y de venta.
type OrderKind string

const (
	OrderKindPurchase OrderKind = "PURCHASE"
	OrderKindSale     OrderKind = "SALE"
)

// Order cabecera de una orden de compra o venta.
// PaymentStatus nunca se asigna directamente: SetPaidAmount y RecalculateTotals lo derivan.
type Order struct {
	ID            string
	Kind          OrderKind
	Number        string // PO-2026-00001 / SO-2026-00001
	PartyID       string
	Date          time.Time
	TotalQuantity decimal.Decimal
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentStatus payment.Status
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Lines         []OrderLine
}

// OrderLine línea de una orden; UnitPrice se captura al confirmar.
type OrderLine struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// NewOrderLine construye una línea con su total.
func NewOrderLine(id, orderID, productID string, quantity, unitPrice decimal.Decimal) OrderLine {
	return OrderLine{
		ID:        id,
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: quantity.Mul(unitPrice),
	}
}

// RecalculateTotals suma cantidades y totales de las líneas y vuelve a derivar el estado de pago.
func (o *Order) RecalculateTotals() {
	qty, amount := decimal.Zero, decimal.Zero
	for _, l := range o.Lines {
		qty = qty.Add(l.Quantity)
		amount = amount.Add(l.LineTotal)
	}
	o.TotalQuantity = qty
	o.TotalAmount = amount
	o.PaymentStatus = payment.Classify(o.TotalAmount, o.PaidAmount)
}

// SetPaidAmount es la única vía para cambiar lo pagado.
func (o *Order) SetPaidAmount(paid decimal.Decimal) {
	o.PaidAmount = paid
	o.PaymentStatus = payment.Classify(o.TotalAmount, paid)
}

// Balance saldo pendiente (nunca negativo).
func (o *Order) Balance() decimal.Decimal {
	b := o.TotalAmount.Sub(o.PaidAmount)
	if b.IsNegative() {
		return decimal.Zero
	}
	return b
}
