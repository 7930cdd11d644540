package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/application/testutil"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/inventory"
	"github.com/jhoicas/molino-api/pkg/logger"
)

var dec = testutil.Dec

func newService(f *testutil.Fixture) *ledger.Service {
	return ledger.NewService(f.Products, f.Stock, f.Locker, f.TxRunner, logger.Nop())
}

func TestLedger_AdjustNuncaNegativo(t *testing.T) {
	ctx := context.Background()
	f := testutil.New()
	p := f.Product(t, "ARZ-BL", entity.ProductTypeFinishedGood, "3000", "10")
	l := ledger.New(f.Stock)

	_, err := l.Adjust(ctx, p.ID, dec("-11"))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "10", f.Quantity(t, p.ID).String(), "sin recorte ni cambio parcial")

	q, err := l.Adjust(ctx, p.ID, dec("-10"))
	require.NoError(t, err)
	assert.True(t, q.IsZero())

	q, err = l.Adjust(ctx, p.ID, dec("2.5"))
	require.NoError(t, err)
	assert.Equal(t, "2.5", q.String())
}

func TestLedger_SinEntradaEsNotFound(t *testing.T) {
	ctx := context.Background()
	l := ledger.New(testutil.New().Stock)

	_, err := l.GetQuantity(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = l.Adjust(ctx, "nope", dec("1"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_SetThresholds(t *testing.T) {
	ctx := context.Background()
	f := testutil.New()
	p := f.Product(t, "PADDY", entity.ProductTypeRawMaterial, "1200", "10")
	l := ledger.New(f.Stock)

	_, err := l.SetThresholds(ctx, p.ID, dec("50"), dec("20"))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	_, err = l.SetThresholds(ctx, p.ID, dec("-1"), dec("0"))
	assert.ErrorIs(t, err, domain.ErrInvalidRange)

	e, err := l.SetThresholds(ctx, p.ID, dec("50"), dec("0"))
	require.NoError(t, err, "max = 0 significa sin tope")
	assert.Equal(t, inventory.StatusLowStock, e.Status())

	e, err = l.SetThresholds(ctx, p.ID, dec("5"), dec("10"))
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusOverstock, e.Status())
}

func TestLedger_IsSufficient(t *testing.T) {
	ctx := context.Background()
	f := testutil.New()
	p := f.Product(t, "PADDY", entity.ProductTypeRawMaterial, "1200", "10")
	l := ledger.New(f.Stock)

	ok, err := l.IsSufficient(ctx, p.ID, dec("10"))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.IsSufficient(ctx, p.ID, dec("10.01"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = l.IsSufficient(ctx, p.ID, dec("0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_InitializeYDuplicado(t *testing.T) {
	ctx := context.Background()
	f := testutil.New()
	svc := newService(f)
	p := &entity.Product{ID: "p-new", Code: "SALV", Name: "Salvado", Type: entity.ProductTypeByProduct, Active: true}
	require.NoError(t, f.Products.Create(ctx, p))

	v, err := svc.Initialize(ctx, p.ID, dec("0"), dec("5"), dec("0"))
	require.NoError(t, err)
	assert.Equal(t, inventory.StatusOutOfStock, v.Status)
	assert.Equal(t, "SALV", v.ProductCode)

	_, err = svc.Initialize(ctx, p.ID, dec("1"), dec("0"), dec("0"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = svc.Initialize(ctx, "sin-producto", dec("1"), dec("0"), dec("0"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_AdjustYList(t *testing.T) {
	ctx := context.Background()
	f := testutil.New()
	svc := newService(f)
	a := f.Product(t, "A", entity.ProductTypeRawMaterial, "1", "10")
	f.Product(t, "B", entity.ProductTypeFinishedGood, "1", "0")

	v, err := svc.Adjust(ctx, a.ID, dec("-4"))
	require.NoError(t, err)
	assert.Equal(t, "6", v.Quantity.String())

	_, err = svc.Adjust(ctx, a.ID, dec("-7"))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	_, err = svc.Adjust(ctx, a.ID, dec("0"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
