package repository

import (
	"context"

	"github.com/jhoicas/molino-api/internal/domain/entity"
)

// StockRepository define el puerto del libro de existencias (una fila por producto).
// Dentro de una transacción GetForUpdate bloquea la fila (SELECT ... FOR UPDATE).
// Get y GetForUpdate devuelven (nil, nil) si el producto no tiene entrada.
type StockRepository interface {
	Get(ctx context.Context, productID string) (*entity.StockLedgerEntry, error)
	GetForUpdate(ctx context.Context, productID string) (*entity.StockLedgerEntry, error)
	// Create inserta la entrada; domain.ErrDuplicate si ya existe.
	Create(ctx context.Context, entry *entity.StockLedgerEntry) error
	// Save persiste cantidad, niveles y fecha de actualización.
	Save(ctx context.Context, entry *entity.StockLedgerEntry) error
	List(ctx context.Context) ([]*entity.StockLedgerEntry, error)
}
