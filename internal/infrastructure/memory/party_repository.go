package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.PartyRepository = (*PartyRepo)(nil)

// PartyRepo proveedores y clientes en memoria.
type PartyRepo struct {
	s *Store
}

// NewPartyRepository construye el repositorio.
func NewPartyRepository(s *Store) *PartyRepo {
	return &PartyRepo{s: s}
}

func (r *PartyRepo) Create(_ context.Context, p *entity.Party) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parties[p.ID]; ok {
		return domain.ErrDuplicate
	}
	if p.TaxID != "" {
		for _, other := range r.s.parties {
			if other.Kind == p.Kind && other.TaxID == p.TaxID {
				return domain.ErrDuplicate
			}
		}
	}
	r.s.parties[p.ID] = *p
	return nil
}

func (r *PartyRepo) GetByID(_ context.Context, id string) (*entity.Party, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.parties[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *PartyRepo) GetByKindAndTaxID(_ context.Context, kind entity.PartyKind, taxID string) (*entity.Party, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.parties {
		if p.Kind == kind && p.TaxID == taxID {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *PartyRepo) Update(_ context.Context, p *entity.Party) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parties[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.parties[p.ID] = *p
	return nil
}

func (r *PartyRepo) ListByKind(_ context.Context, kind entity.PartyKind, limit, offset int) ([]*entity.Party, error) {
	r.s.mu.RLock()
	items := make([]*entity.Party, 0)
	for _, p := range r.s.parties {
		if kind != "" && p.Kind != kind {
			continue
		}
		p := p
		items = append(items, &p)
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return paginate(items, limit, offset), nil
}
