package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo productos en memoria.
type ProductRepo struct {
	s *Store
}

// NewProductRepository construye el repositorio.
func NewProductRepository(s *Store) *ProductRepo {
	return &ProductRepo{s: s}
}

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, other := range r.s.products {
		if other.Code == p.Code {
			return fmt.Errorf("%w: código %s", domain.ErrDuplicate, p.Code)
		}
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.Code == code {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.products[p.ID] = *p
	return nil
}

func (r *ProductRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.RLock()
	items := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if f.Type != "" && p.Type != f.Type {
			continue
		}
		if f.OnlyActive && !p.Active {
			continue
		}
		p := p
		items = append(items, &p)
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return paginate(items, f.Limit, f.Offset), nil
}
