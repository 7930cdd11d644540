package repository

import (
	"context"

	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/payment"
)

// OrderFilter filtros para listar órdenes de un tipo.
type OrderFilter struct {
	Kind    entity.OrderKind
	PartyID string         // vacío = todos
	Status  payment.Status // vacío = todos
	Limit   int
	Offset  int
}

// OrderRepository define el puerto de persistencia para órdenes de compra/venta y sus líneas.
type OrderRepository interface {
	// Create persiste cabecera y líneas.
	Create(ctx context.Context, order *entity.Order) error
	// GetByID devuelve la orden con sus líneas o (nil, nil).
	GetByID(ctx context.Context, kind entity.OrderKind, id string) (*entity.Order, error)
	// UpdatePayment persiste paid_amount, payment_status y updated_at.
	UpdatePayment(ctx context.Context, order *entity.Order) error
	// List devuelve cabeceras (sin líneas) ordenadas por fecha descendente.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)
}
