package repository

import (
	"context"

	"github.com/jhoicas/molino-api/internal/domain/entity"
)

// ProductFilter filtros simples para listar productos.
type ProductFilter struct {
	Type       entity.ProductType // vacío = todos
	OnlyActive bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
