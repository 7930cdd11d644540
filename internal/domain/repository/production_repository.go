package repository

import (
	"context"
	"time"

	"github.com/jhoicas/molino-api/internal/domain/entity"
)

// ProductionRepository define el puerto de persistencia para corridas de producción.
type ProductionRepository interface {
	Create(ctx context.Context, record *entity.ProductionRecord) error
	GetByID(ctx context.Context, id string) (*entity.ProductionRecord, error)
	// ListByDateRange lista corridas con from <= date < to, más recientes primero.
	ListByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.ProductionRecord, error)
}
