package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo órdenes de compra y venta en memoria.
type OrderRepo struct {
	s  *Store
	tx *txState
}

// NewOrderRepository repositorio fuera de transacción.
func NewOrderRepository(s *Store) *OrderRepo {
	return &OrderRepo{s: s}
}

// checkOrderNumber requiere s.mu tomado.
func (s *Store) checkOrderNumber(o entity.Order) error {
	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("%w: orden %s", domain.ErrDuplicate, o.ID)
	}
	for _, other := range s.orders {
		if other.Kind == o.Kind && other.Number == o.Number {
			return fmt.Errorf("%w: número %s", domain.ErrDuplicate, o.Number)
		}
	}
	return nil
}

func (r *OrderRepo) Create(_ context.Context, o *entity.Order) error {
	if r.tx != nil {
		r.tx.orders[o.ID] = copyOrder(*o)
		r.tx.ordersNew[o.ID] = true
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.checkOrderNumber(*o); err != nil {
		return err
	}
	r.s.orders[o.ID] = copyOrder(*o)
	return nil
}

func (r *OrderRepo) GetByID(_ context.Context, kind entity.OrderKind, id string) (*entity.Order, error) {
	if r.tx != nil {
		if o, ok := r.tx.orders[id]; ok && r.tx.ordersNew[id] {
			if o.Kind != kind {
				return nil, nil
			}
			o = copyOrder(o)
			return &o, nil
		}
	}
	r.s.mu.RLock()
	o, ok := r.s.orders[id]
	r.s.mu.RUnlock()
	if !ok || o.Kind != kind {
		return nil, nil
	}
	o = copyOrder(o)
	if r.tx != nil {
		if upd, ok := r.tx.orders[id]; ok {
			o.PaidAmount = upd.PaidAmount
			o.PaymentStatus = upd.PaymentStatus
			o.UpdatedAt = upd.UpdatedAt
		}
	}
	return &o, nil
}

func (r *OrderRepo) UpdatePayment(ctx context.Context, o *entity.Order) error {
	if r.tx != nil {
		current, err := r.GetByID(ctx, o.Kind, o.ID)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrNotFound
		}
		current.PaidAmount = o.PaidAmount
		current.PaymentStatus = o.PaymentStatus
		current.UpdatedAt = o.UpdatedAt
		r.tx.orders[o.ID] = *current
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.orders[o.ID]
	if !ok || current.Kind != o.Kind {
		return domain.ErrNotFound
	}
	current.PaidAmount = o.PaidAmount
	current.PaymentStatus = o.PaymentStatus
	current.UpdatedAt = o.UpdatedAt
	r.s.orders[o.ID] = current
	return nil
}

// List devuelve cabeceras sin líneas, más recientes primero.
func (r *OrderRepo) List(_ context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	r.s.mu.RLock()
	items := make([]*entity.Order, 0)
	for _, o := range r.s.orders {
		if o.Kind != f.Kind {
			continue
		}
		if f.PartyID != "" && o.PartyID != f.PartyID {
			continue
		}
		if f.Status != "" && o.PaymentStatus != f.Status {
			continue
		}
		o.Lines = nil
		o := o
		items = append(items, &o)
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date.Equal(items[j].Date) {
			return items[i].Number > items[j].Number
		}
		return items[i].Date.After(items[j].Date)
	})
	return paginate(items, f.Limit, f.Offset), nil
}
