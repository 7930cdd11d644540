package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var (
	_ repository.MachineRepository = (*MachineRepo)(nil)
	_ repository.StaffRepository   = (*StaffRepo)(nil)
)

// MachineRepo máquinas sobre PostgreSQL.
type MachineRepo struct {
	q Querier
}

// NewMachineRepository construye el adaptador.
func NewMachineRepository(q Querier) *MachineRepo {
	return &MachineRepo{q: q}
}

func (r *MachineRepo) Create(ctx context.Context, m *entity.Machine) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO machines (id, code, name, capacity, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Code, m.Name, m.Capacity, m.Active, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert machine: %w", err)
	}
	return nil
}

func (r *MachineRepo) GetByID(ctx context.Context, id string) (*entity.Machine, error) {
	var m entity.Machine
	err := r.q.QueryRow(ctx, `
		SELECT id, code, name, capacity, active, created_at, updated_at FROM machines WHERE id = $1`, id).
		Scan(&m.ID, &m.Code, &m.Name, &m.Capacity, &m.Active, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get machine: %w", err)
	}
	return &m, nil
}

func (r *MachineRepo) Update(ctx context.Context, m *entity.Machine) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE machines SET name = $2, capacity = $3, active = $4, updated_at = $5 WHERE id = $1`,
		m.ID, m.Name, m.Capacity, m.Active, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update machine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MachineRepo) List(ctx context.Context, limit, offset int) ([]*entity.Machine, error) {
	var args []any
	query := `SELECT id, code, name, capacity, active, created_at, updated_at FROM machines ORDER BY code` +
		limitOffset(&args, limit, offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()
	var list []*entity.Machine
	for rows.Next() {
		var m entity.Machine
		if err := rows.Scan(&m.ID, &m.Code, &m.Name, &m.Capacity, &m.Active, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// StaffRepo personal sobre PostgreSQL.
type StaffRepo struct {
	q Querier
}

// NewStaffRepository construye el adaptador.
func NewStaffRepository(q Querier) *StaffRepo {
	return &StaffRepo{q: q}
}

func (r *StaffRepo) Create(ctx context.Context, s *entity.Staff) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO staff (id, name, position, phone, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.Position, s.Phone, s.Active, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert staff: %w", err)
	}
	return nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id string) (*entity.Staff, error) {
	var s entity.Staff
	err := r.q.QueryRow(ctx, `
		SELECT id, name, position, phone, active, created_at, updated_at FROM staff WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Position, &s.Phone, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get staff: %w", err)
	}
	return &s, nil
}

func (r *StaffRepo) Update(ctx context.Context, s *entity.Staff) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE staff SET name = $2, position = $3, phone = $4, active = $5, updated_at = $6 WHERE id = $1`,
		s.ID, s.Name, s.Position, s.Phone, s.Active, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StaffRepo) List(ctx context.Context, limit, offset int) ([]*entity.Staff, error) {
	var args []any
	query := `SELECT id, name, position, phone, active, created_at, updated_at FROM staff ORDER BY name` +
		limitOffset(&args, limit, offset)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	defer rows.Close()
	var list []*entity.Staff
	for rows.Next() {
		var s entity.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.Position, &s.Phone, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan staff: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
