package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InitializeStockRequest crea la entrada del libro de existencias de un producto.
type InitializeStockRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity"`
	MinLevel  decimal.Decimal `json:"min_level"`
	MaxLevel  decimal.Decimal `json:"max_level"`
}

// SetThresholdsRequest niveles mínimo y máximo (max_level = 0 sin tope).
type SetThresholdsRequest struct {
	MinLevel decimal.Decimal `json:"min_level"`
	MaxLevel decimal.Decimal `json:"max_level"`
}

// AdjustStockRequest ajuste manual (delta positivo o negativo).
type AdjustStockRequest struct {
	Delta  decimal.Decimal `json:"delta"`
	Reason string          `json:"reason" validate:"required,min=3,max=300"`
}

// StockResponse entrada del libro con su estado derivado.
type StockResponse struct {
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	ProductType string          `json:"product_type"`
	Active      bool            `json:"active"`
	Quantity    decimal.Decimal `json:"quantity"`
	MinLevel    decimal.Decimal `json:"min_level"`
	MaxLevel    decimal.Decimal `json:"max_level"`
	Status      string          `json:"status"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
