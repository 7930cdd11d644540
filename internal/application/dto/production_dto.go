package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductionRequest entrada para validar o registrar una corrida.
type CreateProductionRequest struct {
	Date              *time.Time      `json:"date"`
	RawProductID      string          `json:"raw_product_id" validate:"required"`
	FinishedProductID string          `json:"finished_product_id" validate:"required"`
	InputQuantity     decimal.Decimal `json:"input_quantity"`
	OutputQuantity    decimal.Decimal `json:"output_quantity"`
	WasteQuantity     decimal.Decimal `json:"waste_quantity"`
	MachineID         string          `json:"machine_id"`
	OperatorID        string          `json:"operator_id"`
	Notes             string          `json:"notes" validate:"omitempty,max=500"`
}

// DateRangeRequest rango [from, to) en formato YYYY-MM-DD.
type DateRangeRequest struct {
	PageRequest
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// ProductionResponse corrida registrada.
type ProductionResponse struct {
	ID                string          `json:"id"`
	Number            string          `json:"number"`
	Date              time.Time       `json:"date"`
	RawProductID      string          `json:"raw_product_id"`
	FinishedProductID string          `json:"finished_product_id"`
	InputQuantity     decimal.Decimal `json:"input_quantity"`
	OutputQuantity    decimal.Decimal `json:"output_quantity"`
	WasteQuantity     decimal.Decimal `json:"waste_quantity"`
	ConversionRate    decimal.Decimal `json:"conversion_rate"`
	WastePercent      decimal.Decimal `json:"waste_percent"`
	Efficient         bool            `json:"efficient"`
	MachineID         string          `json:"machine_id,omitempty"`
	OperatorID        string          `json:"operator_id,omitempty"`
	Notes             string          `json:"notes"`
	CreatedBy         string          `json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
}
