package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockReportResponse existencias con conteo por estado.
type StockReportResponse struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Counts      map[string]int  `json:"counts"`
	Items       []StockResponse `json:"items"`
}

// ProductionSummaryResponse resumen de eficiencia en un rango.
type ProductionSummaryResponse struct {
	From                  time.Time       `json:"from"`
	To                    time.Time       `json:"to"`
	Runs                  int             `json:"runs"`
	TotalInput            decimal.Decimal `json:"total_input"`
	TotalOutput           decimal.Decimal `json:"total_output"`
	TotalWaste            decimal.Decimal `json:"total_waste"`
	AverageConversionRate decimal.Decimal `json:"average_conversion_rate"`
	EfficientRuns         int             `json:"efficient_runs"`
	Threshold             decimal.Decimal `json:"threshold"`
}

// OutstandingOrderResponse orden con saldo pendiente.
type OutstandingOrderResponse struct {
	ID            string          `json:"id"`
	Kind          string          `json:"kind"`
	Number        string          `json:"number"`
	PartyID       string          `json:"party_id"`
	PartyName     string          `json:"party_name"`
	Date          time.Time       `json:"date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Balance       decimal.Decimal `json:"balance"`
	PaymentStatus string          `json:"payment_status"`
}

// OutstandingReportResponse saldos por cobrar (ventas) y por pagar (compras).
type OutstandingReportResponse struct {
	Receivable      []OutstandingOrderResponse `json:"receivable"`
	Payable         []OutstandingOrderResponse `json:"payable"`
	TotalReceivable decimal.Decimal            `json:"total_receivable"`
	TotalPayable    decimal.Decimal            `json:"total_payable"`
}
