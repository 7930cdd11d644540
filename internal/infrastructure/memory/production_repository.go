package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo corridas de producción en memoria.
type ProductionRepo struct {
	s  *Store
	tx *txState
}

// NewProductionRepository repositorio fuera de transacción.
func NewProductionRepository(s *Store) *ProductionRepo {
	return &ProductionRepo{s: s}
}

func (r *ProductionRepo) Create(_ context.Context, p *entity.ProductionRecord) error {
	if r.tx != nil {
		r.tx.production = append(r.tx.production, *p)
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.production[p.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.production[p.ID] = *p
	return nil
}

func (r *ProductionRepo) GetByID(_ context.Context, id string) (*entity.ProductionRecord, error) {
	if r.tx != nil {
		for _, p := range r.tx.production {
			if p.ID == id {
				p := p
				return &p, nil
			}
		}
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.production[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductionRepo) ListByDateRange(_ context.Context, from, to time.Time, limit, offset int) ([]*entity.ProductionRecord, error) {
	r.s.mu.RLock()
	items := make([]*entity.ProductionRecord, 0)
	for _, p := range r.s.production {
		if p.Date.Before(from) || !p.Date.Before(to) {
			continue
		}
		p := p
		items = append(items, &p)
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool {
		if items[i].Date.Equal(items[j].Date) {
			return items[i].Number > items[j].Number
		}
		return items[i].Date.After(items[j].Date)
	})
	return paginate(items, limit, offset), nil
}
