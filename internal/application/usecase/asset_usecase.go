package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

// AssetUseCase máquinas y personal del molino.
type AssetUseCase struct {
	machines repository.MachineRepository
	staff    repository.StaffRepository
}

// NewAssetUseCase construye el caso de uso.
func NewAssetUseCase(machines repository.MachineRepository, staff repository.StaffRepository) *AssetUseCase {
	return &AssetUseCase{machines: machines, staff: staff}
}

// CreateMachine registra una máquina activa.
func (uc *AssetUseCase) CreateMachine(ctx context.Context, in dto.CreateMachineRequest) (*dto.MachineResponse, error) {
	if in.Capacity.IsNegative() {
		return nil, fmt.Errorf("%w: la capacidad no puede ser negativa", domain.ErrInvalidInput)
	}
	now := time.Now()
	m := &entity.Machine{
		ID:        uuid.New().String(),
		Code:      strings.ToUpper(strings.TrimSpace(in.Code)),
		Name:      in.Name,
		Capacity:  in.Capacity,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.machines.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMachineResponse(m), nil
}

// GetMachine obtiene una máquina.
func (uc *AssetUseCase) GetMachine(ctx context.Context, id string) (*dto.MachineResponse, error) {
	m, err := uc.machines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMachineResponse(m), nil
}

// ListMachines lista máquinas.
func (uc *AssetUseCase) ListMachines(ctx context.Context, page dto.PageRequest) ([]dto.MachineResponse, error) {
	page.DefaultPage()
	list, err := uc.machines.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MachineResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMachineResponse(m))
	}
	return out, nil
}

// DeactivateMachine la máquina deja de poder usarse en corridas nuevas.
func (uc *AssetUseCase) DeactivateMachine(ctx context.Context, id string) (*dto.MachineResponse, error) {
	m, err := uc.machines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}
	m.Active = false
	m.UpdatedAt = time.Now()
	if err := uc.machines.Update(ctx, m); err != nil {
		return nil, err
	}
	return toMachineResponse(m), nil
}

// CreateStaff registra una persona activa.
func (uc *AssetUseCase) CreateStaff(ctx context.Context, in dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	now := time.Now()
	s := &entity.Staff{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Position:  in.Position,
		Phone:     in.Phone,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.staff.Create(ctx, s); err != nil {
		return nil, err
	}
	return toStaffResponse(s), nil
}

// GetStaff obtiene una persona.
func (uc *AssetUseCase) GetStaff(ctx context.Context, id string) (*dto.StaffResponse, error) {
	s, err := uc.staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStaffResponse(s), nil
}

// ListStaff lista el personal.
func (uc *AssetUseCase) ListStaff(ctx context.Context, page dto.PageRequest) ([]dto.StaffResponse, error) {
	page.DefaultPage()
	list, err := uc.staff.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StaffResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStaffResponse(s))
	}
	return out, nil
}

// DeactivateStaff la persona deja de poder operar corridas nuevas.
func (uc *AssetUseCase) DeactivateStaff(ctx context.Context, id string) (*dto.StaffResponse, error) {
	s, err := uc.staff.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	s.Active = false
	s.UpdatedAt = time.Now()
	if err := uc.staff.Update(ctx, s); err != nil {
		return nil, err
	}
	return toStaffResponse(s), nil
}

func toMachineResponse(m *entity.Machine) *dto.MachineResponse {
	if m == nil {
		return nil
	}
	return &dto.MachineResponse{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Capacity:  m.Capacity,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toStaffResponse(s *entity.Staff) *dto.StaffResponse {
	if s == nil {
		return nil
	}
	return &dto.StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		Position:  s.Position,
		Phone:     s.Phone,
		Active:    s.Active,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
