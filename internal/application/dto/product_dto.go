package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Code        string          `json:"code" validate:"required,min=1,max=50"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Type        string          `json:"type" validate:"required,oneof=RAW_MATERIAL FINISHED_GOOD BY_PRODUCT"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitMeasure string          `json:"unit_measure" validate:"omitempty,max=20"`
	Description string          `json:"description" validate:"omitempty,max=500"`
}

// UpdateProductRequest entrada para actualizar un producto. El tipo y el código no cambian.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	UnitMeasure *string          `json:"unit_measure" validate:"omitempty,max=20"`
	Description *string          `json:"description" validate:"omitempty,max=500"`
}

// ProductListRequest filtros de listado.
type ProductListRequest struct {
	PageRequest
	Type       string `query:"type" validate:"omitempty,oneof=RAW_MATERIAL FINISHED_GOOD BY_PRODUCT"`
	OnlyActive bool   `query:"only_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitMeasure string          `json:"unit_measure"`
	Description string          `json:"description"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
