package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/application/production"
	"github.com/jhoicas/molino-api/internal/application/testutil"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/inventory"
	"github.com/jhoicas/molino-api/pkg/logger"
)

var dec = testutil.Dec

func newUseCase(f *testutil.Fixture) *production.UseCase {
	return production.NewUseCase(production.Deps{
		Products: f.Products,
		Machines: f.Machines,
		Staff:    f.Staff,
		Records:  f.Production,
		Stock:    f.Stock,
		Locker:   f.Locker,
		TxRunner: f.TxRunner,
		Log:      logger.Nop(),
	})
}

func TestProduction_CorridaCompleta(t *testing.T) {
	ctx := context.Background()
	f := testutil.New()
	paddy := f.Product(t, "PADDY", entity.ProductTypeRawMaterial, "1200", "1000")
	rice := f.Product(t, "ARZ", entity.ProductTypeFinishedGood, "3200", "0")
	machine := &entity.Machine{ID: "m1", Code: "DESC-01", Name: "Descascaradora", Active: true}
	require.NoError(t, f.Machines.Create(ctx, machine))
	uc := newUseCase(f)

	rec, err := uc.Commit(ctx, production.Input{
		RawProductID:      paddy.ID,
		FinishedProductID: rice.ID,
		InputQuantity:     dec("1000"),
		OutputQuantity:    dec("650"),
		WasteQuantity:     dec("50"),
		MachineID:         machine.ID,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^PR-\d{4}-00001$`, rec.Number)
	assert.Equal(t, "65", rec.ConversionRate.String())
	assert.True(t, uc.IsEfficient(rec), "65% alcanza el umbral por defecto")
	assert.Equal(t, "5", rec.WastePercent().String())

	svc := ledger.NewService(f.Products, f.Stock, f.Locker, f.TxRunner, logger.Nop())
	raw, err := svc.View(ctx, paddy.ID)
	require.NoError(t, err)
	assert.True(t, raw.Quantity.IsZero())
	assert.Equal(t, inventory.StatusOutOfStock, raw.Status)
	assert.Equal(t, "650", f.Quantity(t, rice.ID).String())

	got, err := uc.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Number, got.Number)
}

func TestProduction_MateriaPrimaInsuficienteNoMueveNada(t *testing.T) {
	ctx := context.Background()
	f := testutil.New()
	paddy := f.Product(t, "PADDY", entity.ProductTypeRawMaterial, "1200", "500")
	rice := f.Product(t, "ARZ", entity.ProductTypeFinishedGood, "3200", "7")
	uc := newUseCase(f)

	_, err := uc.Commit(ctx, production.Input{
		RawProductID:      paddy.ID,
		FinishedProductID: rice.ID,
		InputQuantity:     dec("1000"),
		OutputQuantity:    dec("650"),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, "500", f.Quantity(t, paddy.ID).String())
	assert.Equal(t, "7", f.Quantity(t, rice.ID).String())

	list, err := uc.List(ctx, time.Now().Add(-time.Hour), time.Now().Add(time.Hour), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProduction_Validaciones(t *testing.T) {
	ctx := context.Background()
	f := testutil.New()
	paddy := f.Product(t, "PADDY", entity.ProductTypeRawMaterial, "1200", "100")
	require.NoError(t, f.Staff.Create(ctx, &entity.Staff{ID: "s1", Name: "Pedro", Active: false}))
	uc := newUseCase(f)

	res, err := uc.Validate(ctx, production.Input{
		RawProductID:      paddy.ID,
		FinishedProductID: paddy.ID,
		InputQuantity:     dec("0"),
		OutputQuantity:    dec("-1"),
		WasteQuantity:     dec("-1"),
		MachineID:         "no-existe",
		OperatorID:        "s1",
	})
	require.NoError(t, err)
	assert.False(t, res.Valid())
	assert.Len(t, res.Errors, 6)
}

func TestProduction_UmbralConfigurable(t *testing.T) {
	ctx := context.Background()
	f := testutil.New()
	paddy := f.Product(t, "PADDY", entity.ProductTypeRawMaterial, "1200", "1000")
	rice := f.Product(t, "ARZ", entity.ProductTypeFinishedGood, "3200", "0")
	uc := production.NewUseCase(production.Deps{
		Products: f.Products, Machines: f.Machines, Staff: f.Staff, Records: f.Production,
		Stock: f.Stock, Locker: f.Locker, TxRunner: f.TxRunner, Log: logger.Nop(),
		EfficiencyThreshold: dec("70"),
	})

	rec, err := uc.Commit(ctx, production.Input{
		RawProductID: paddy.ID, FinishedProductID: rice.ID,
		InputQuantity: dec("1000"), OutputQuantity: dec("650"),
	})
	require.NoError(t, err)
	assert.False(t, uc.IsEfficient(rec))
}
