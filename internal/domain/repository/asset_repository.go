package repository

import (
	"context"

	"github.com/jhoicas/molino-api/internal/domain/entity"
)

// MachineRepository define el puerto de persistencia para máquinas.
type MachineRepository interface {
	Create(ctx context.Context, machine *entity.Machine) error
	GetByID(ctx context.Context, id string) (*entity.Machine, error)
	Update(ctx context.Context, machine *entity.Machine) error
	List(ctx context.Context, limit, offset int) ([]*entity.Machine, error)
}

// StaffRepository define el puerto de persistencia para el personal.
type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	GetByID(ctx context.Context, id string) (*entity.Staff, error)
	Update(ctx context.Context, staff *entity.Staff) error
	List(ctx context.Context, limit, offset int) ([]*entity.Staff, error)
}
