package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/application/usecase"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/infrastructure/memory"
)

func TestProductUseCase_CrearActualizarDesactivar(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewProductUseCase(memory.NewProductRepository(memory.NewStore()))

	p, err := uc.Create(ctx, dto.CreateProductRequest{
		Code: " arz-01 ", Name: "Arroz blanco", Type: "FINISHED_GOOD", UnitPrice: decimal.NewFromInt(3200),
	})
	require.NoError(t, err)
	assert.Equal(t, "ARZ-01", p.Code)
	assert.Equal(t, "kg", p.UnitMeasure)
	assert.True(t, p.Active)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "ARZ-01", Name: "Otro", Type: "FINISHED_GOOD"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Code: "X", Name: "X", Type: "GRANO"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	price := decimal.NewFromInt(3500)
	updated, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{UnitPrice: &price})
	require.NoError(t, err)
	assert.Equal(t, "3500", updated.UnitPrice.String())

	off, err := uc.SetActive(ctx, p.ID, false)
	require.NoError(t, err)
	assert.False(t, off.Active)

	list, err := uc.List(ctx, dto.ProductListRequest{OnlyActive: true})
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	missing, err := uc.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPartyUseCase_TaxIDUnicoPorTipo(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPartyUseCase(memory.NewPartyRepository(memory.NewStore()))

	_, err := uc.Create(ctx, dto.CreatePartyRequest{Kind: "SUPPLIER", Name: "Finca El Palmar", TaxID: "900123"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreatePartyRequest{Kind: "CUSTOMER", Name: "Finca El Palmar", TaxID: "900123"})
	require.NoError(t, err, "el mismo NIT puede ser proveedor y cliente")
	_, err = uc.Create(ctx, dto.CreatePartyRequest{Kind: "SUPPLIER", Name: "Duplicado", TaxID: "900123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx, "SUPPLIER", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)

	_, err = uc.List(ctx, "OTRO", dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
