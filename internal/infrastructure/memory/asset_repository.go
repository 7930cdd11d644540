package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var (
	_ repository.MachineRepository = (*MachineRepo)(nil)
	_ repository.StaffRepository   = (*StaffRepo)(nil)
)

// MachineRepo máquinas en memoria.
type MachineRepo struct {
	s *Store
}

// NewMachineRepository construye el repositorio.
func NewMachineRepository(s *Store) *MachineRepo {
	return &MachineRepo{s: s}
}

func (r *MachineRepo) Create(_ context.Context, m *entity.Machine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.machines {
		if other.ID == m.ID || other.Code == m.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.machines[m.ID] = *m
	return nil
}

func (r *MachineRepo) GetByID(_ context.Context, id string) (*entity.Machine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.machines[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *MachineRepo) Update(_ context.Context, m *entity.Machine) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.machines[m.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.machines[m.ID] = *m
	return nil
}

func (r *MachineRepo) List(_ context.Context, limit, offset int) ([]*entity.Machine, error) {
	r.s.mu.RLock()
	items := make([]*entity.Machine, 0, len(r.s.machines))
	for _, m := range r.s.machines {
		m := m
		items = append(items, &m)
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].Code < items[j].Code })
	return paginate(items, limit, offset), nil
}

// StaffRepo personal en memoria.
type StaffRepo struct {
	s *Store
}

// NewStaffRepository construye el repositorio.
func NewStaffRepository(s *Store) *StaffRepo {
	return &StaffRepo{s: s}
}

func (r *StaffRepo) Create(_ context.Context, st *entity.Staff) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.staff[st.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.staff[st.ID] = *st
	return nil
}

func (r *StaffRepo) GetByID(_ context.Context, id string) (*entity.Staff, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.staff[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

func (r *StaffRepo) Update(_ context.Context, st *entity.Staff) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.staff[st.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.staff[st.ID] = *st
	return nil
}

func (r *StaffRepo) List(_ context.Context, limit, offset int) ([]*entity.Staff, error) {
	r.s.mu.RLock()
	items := make([]*entity.Staff, 0, len(r.s.staff))
	for _, st := range r.s.staff {
		st := st
		items = append(items, &st)
	}
	r.s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return paginate(items, limit, offset), nil
}
