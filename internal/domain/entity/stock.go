package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/domain/inventory"
)

// StockLedgerEntry es el registro único de existencias de un producto (1:1 con Product).
// Solo el libro de existencias lo modifica; el estado se deriva en cada lectura.
type StockLedgerEntry struct {
	ProductID string
	Quantity  decimal.Decimal // >= 0 entre transacciones
	MinLevel  decimal.Decimal
	MaxLevel  decimal.Decimal // 0 = sin tope
	UpdatedAt time.Time
}

// Status clasifica la cantidad actual frente a los niveles configurados.
func (e *StockLedgerEntry) Status() inventory.StockStatus {
	return inventory.Classify(e.Quantity, e.MinLevel, e.MaxLevel)
}
