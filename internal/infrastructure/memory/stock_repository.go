package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo libro de existencias en memoria. Con tx != nil lee el overlay primero y escribe solo en él.
type StockRepo struct {
	s  *Store
	tx *txState
}

// NewStockRepository repositorio fuera de transacción.
func NewStockRepository(s *Store) *StockRepo {
	return &StockRepo{s: s}
}

func (r *StockRepo) Get(_ context.Context, productID string) (*entity.StockLedgerEntry, error) {
	if r.tx != nil {
		if e, ok := r.tx.stock[productID]; ok {
			return &e, nil
		}
	}
	r.s.mu.RLock()
	e, ok := r.s.stock[productID]
	ver := r.s.stockVer[productID]
	r.s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if r.tx != nil {
		if _, seen := r.tx.stockReadVer[productID]; !seen {
			r.tx.stockReadVer[productID] = ver
		}
	}
	return &e, nil
}

// GetForUpdate igual que Get; el aislamiento lo dan el Locker y la verificación de versión del commit.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID string) (*entity.StockLedgerEntry, error) {
	return r.Get(ctx, productID)
}

func (r *StockRepo) Create(ctx context.Context, e *entity.StockLedgerEntry) error {
	if r.tx != nil {
		existing, err := r.Get(ctx, e.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicate
		}
		r.tx.stock[e.ProductID] = *e
		r.tx.stockCreated[e.ProductID] = true
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stock[e.ProductID]; ok {
		return domain.ErrDuplicate
	}
	r.s.stock[e.ProductID] = *e
	r.s.stockVer[e.ProductID]++
	return nil
}

func (r *StockRepo) Save(ctx context.Context, e *entity.StockLedgerEntry) error {
	if e.Quantity.IsNegative() {
		return domain.ErrInsufficientStock
	}
	if r.tx != nil {
		existing, err := r.Get(ctx, e.ProductID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		r.tx.stock[e.ProductID] = *e
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stock[e.ProductID]; !ok {
		return domain.ErrNotFound
	}
	r.s.stock[e.ProductID] = *e
	r.s.stockVer[e.ProductID]++
	return nil
}

func (r *StockRepo) List(_ context.Context) ([]*entity.StockLedgerEntry, error) {
	r.s.mu.RLock()
	merged := make(map[string]entity.StockLedgerEntry, len(r.s.stock))
	for id, e := range r.s.stock {
		merged[id] = e
	}
	r.s.mu.RUnlock()
	if r.tx != nil {
		for id, e := range r.tx.stock {
			merged[id] = e
		}
	}
	out := make([]*entity.StockLedgerEntry, 0, len(merged))
	for _, e := range merged {
		e := e
		out = append(out, &e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}
