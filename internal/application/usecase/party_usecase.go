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

// PartyUseCase CRUD de proveedores y clientes.
type PartyUseCase struct {
	repo repository.PartyRepository
}

// NewPartyUseCase construye el caso de uso.
func NewPartyUseCase(repo repository.PartyRepository) *PartyUseCase {
	return &PartyUseCase{repo: repo}
}

// Create registra un tercero activo. El NIT/cédula es único por tipo.
func (uc *PartyUseCase) Create(ctx context.Context, in dto.CreatePartyRequest) (*dto.PartyResponse, error) {
	kind := entity.PartyKind(in.Kind)
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: tipo de tercero %q", domain.ErrInvalidInput, in.Kind)
	}
	taxID := strings.TrimSpace(in.TaxID)
	if taxID != "" {
		existing, err := uc.repo.GetByKindAndTaxID(ctx, kind, taxID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	party := &entity.Party{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      in.Name,
		TaxID:     taxID,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// GetByID obtiene un tercero por ID.
func (uc *PartyUseCase) GetByID(ctx context.Context, id string) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// Update actualiza los datos de contacto.
func (uc *PartyUseCase) Update(ctx context.Context, id string, in dto.UpdatePartyRequest) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, nil
	}
	if in.Name != nil {
		party.Name = *in.Name
	}
	if in.TaxID != nil {
		taxID := strings.TrimSpace(*in.TaxID)
		if taxID != "" && taxID != party.TaxID {
			existing, err := uc.repo.GetByKindAndTaxID(ctx, party.Kind, taxID)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.ErrDuplicate
			}
		}
		party.TaxID = taxID
	}
	if in.Phone != nil {
		party.Phone = *in.Phone
	}
	if in.Email != nil {
		party.Email = *in.Email
	}
	if in.Address != nil {
		party.Address = *in.Address
	}
	party.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// SetActive activa o desactiva un tercero; las órdenes históricas no cambian.
func (uc *PartyUseCase) SetActive(ctx context.Context, id string, active bool) (*dto.PartyResponse, error) {
	party, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, nil
	}
	party.Active = active
	party.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, party); err != nil {
		return nil, err
	}
	return toPartyResponse(party), nil
}

// List lista terceros de un tipo (vacío = todos).
func (uc *PartyUseCase) List(ctx context.Context, kind string, page dto.PageRequest) (*dto.PartyListResponse, error) {
	if kind != "" && !entity.PartyKind(kind).Valid() {
		return nil, fmt.Errorf("%w: tipo de tercero %q", domain.ErrInvalidInput, kind)
	}
	page.DefaultPage()
	list, err := uc.repo.ListByKind(ctx, entity.PartyKind(kind), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPartyResponse(p))
	}
	return &dto.PartyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toPartyResponse(p *entity.Party) *dto.PartyResponse {
	if p == nil {
		return nil
	}
	return &dto.PartyResponse{
		ID:        p.ID,
		Kind:      string(p.Kind),
		Name:      p.Name,
		TaxID:     p.TaxID,
		Phone:     p.Phone,
		Email:     p.Email,
		Address:   p.Address,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
