package repository

import (
	"context"

	"github.com/jhoicas/molino-api/internal/domain/entity"
)

// PartyRepository define el puerto de persistencia para proveedores y clientes.
type PartyRepository interface {
	Create(ctx context.Context, party *entity.Party) error
	GetByID(ctx context.Context, id string) (*entity.Party, error)
	GetByKindAndTaxID(ctx context.Context, kind entity.PartyKind, taxID string) (*entity.Party, error)
	Update(ctx context.Context, party *entity.Party) error
	ListByKind(ctx context.Context, kind entity.PartyKind, limit, offset int) ([]*entity.Party, error)
}
