package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de una orden.
type OrderLineRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para validar o confirmar una compra o venta.
// Las reglas de negocio (cantidades, precios, existencias) se validan en el orquestador.
type CreateOrderRequest struct {
	PartyID    string             `json:"party_id" validate:"required"`
	Date       *time.Time         `json:"date"`
	PaidAmount decimal.Decimal    `json:"paid_amount"`
	Notes      string             `json:"notes" validate:"omitempty,max=500"`
	Lines      []OrderLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// RecordPaymentRequest abono a una orden.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// OrderListRequest filtros de listado.
type OrderListRequest struct {
	PageRequest
	PartyID string `query:"party_id"`
	Status  string `query:"status" validate:"omitempty,oneof=PENDING PARTIAL PAID"`
}

// OrderLineResponse línea confirmada.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// OrderResponse orden confirmada.
type OrderResponse struct {
	ID            string              `json:"id"`
	Kind          string              `json:"kind"`
	Number        string              `json:"number"`
	PartyID       string              `json:"party_id"`
	Date          time.Time           `json:"date"`
	TotalQuantity decimal.Decimal     `json:"total_quantity"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	PaidAmount    decimal.Decimal     `json:"paid_amount"`
	Balance       decimal.Decimal     `json:"balance"`
	PaymentStatus string              `json:"payment_status"`
	Notes         string              `json:"notes"`
	CreatedBy     string              `json:"created_by"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	Lines         []OrderLineResponse `json:"lines,omitempty"`
}

// OrderListResponse lista paginada de órdenes (sin líneas).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// ValidationResponse resultado de /validate.
type ValidationResponse struct {
	Valid             bool     `json:"valid"`
	InsufficientStock bool     `json:"insufficient_stock"`
	Errors            []string `json:"errors"`
}
