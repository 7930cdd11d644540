package reporting_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/application/production"
	"github.com/jhoicas/molino-api/internal/application/reporting"
	"github.com/jhoicas/molino-api/internal/application/testutil"
	"github.com/jhoicas/molino-api/internal/application/trading"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/inventory"
	"github.com/jhoicas/molino-api/pkg/logger"
)

var dec = testutil.Dec

type fakePDF struct {
	last reporting.OrderDocument
}

func (f *fakePDF) GenerateOrderPDF(_ context.Context, doc reporting.OrderDocument) ([]byte, error) {
	f.last = doc
	return []byte("%PDF-fake"), nil
}

type env struct {
	f         *testutil.Fixture
	purchases *trading.Orchestrator
	sales     *trading.Orchestrator
	prod      *production.UseCase
	pdf       *fakePDF
	uc        *reporting.UseCase
}

func newEnv() *env {
	f := testutil.New()
	d := trading.Deps{
		Products: f.Products, Parties: f.Parties, Orders: f.Orders, Stock: f.Stock,
		Locker: f.Locker, TxRunner: f.TxRunner, Log: logger.Nop(),
	}
	e := &env{
		f:         f,
		purchases: trading.NewPurchaseOrchestrator(d),
		sales:     trading.NewSalesOrchestrator(d),
		prod: production.NewUseCase(production.Deps{
			Products: f.Products, Machines: f.Machines, Staff: f.Staff, Records: f.Production,
			Stock: f.Stock, Locker: f.Locker, TxRunner: f.TxRunner, Log: logger.Nop(),
		}),
		pdf: &fakePDF{},
	}
	e.uc = reporting.NewUseCase(reporting.Deps{
		Stock:       ledger.NewService(f.Products, f.Stock, f.Locker, f.TxRunner, logger.Nop()),
		Purchases:   e.purchases,
		Sales:       e.sales,
		Production:  e.prod,
		Parties:     f.Parties,
		Products:    f.Products,
		PDF:         e.pdf,
		CompanyName: "Molino San José",
	})
	return e
}

func TestStockYLowStock(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	e.f.Product(t, "A", entity.ProductTypeRawMaterial, "1", "0")
	e.f.Product(t, "B", entity.ProductTypeFinishedGood, "1", "100")
	inactive := e.f.Product(t, "C", entity.ProductTypeByProduct, "1", "0")
	inactive.Active = false
	require.NoError(t, e.f.Products.Update(ctx, inactive))

	rep, err := e.uc.Stock(ctx)
	require.NoError(t, err)
	assert.Len(t, rep.Items, 3)
	assert.Equal(t, 2, rep.Counts[inventory.StatusOutOfStock])
	assert.Equal(t, 1, rep.Counts[inventory.StatusNormal])

	low, err := e.uc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1, "los productos inactivos no piden reposición")
	assert.Equal(t, "A", low[0].ProductCode)
}

func TestProductionSummary(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	paddy := e.f.Product(t, "PADDY", entity.ProductTypeRawMaterial, "1", "3000")
	rice := e.f.Product(t, "ARZ", entity.ProductTypeFinishedGood, "1", "0")

	for _, out := range []string{"700", "600"} {
		_, err := e.prod.Commit(ctx, production.Input{
			RawProductID: paddy.ID, FinishedProductID: rice.ID,
			InputQuantity: dec("1000"), OutputQuantity: dec(out), WasteQuantity: dec("30"),
		})
		require.NoError(t, err)
	}

	now := time.Now()
	s, err := e.uc.ProductionSummary(ctx, now.Add(-time.Hour), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Runs)
	assert.Equal(t, "2000", s.TotalInput.String())
	assert.Equal(t, "1300", s.TotalOutput.String())
	assert.Equal(t, "60", s.TotalWaste.String())
	assert.Equal(t, "65", s.AverageConversionRate.String())
	assert.Equal(t, 1, s.EfficientRuns)

	_, err = e.uc.ProductionSummary(ctx, now, now)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOutstandingYPDF(t *testing.T) {
	ctx := context.Background()
	e := newEnv()
	supplier := e.f.Party(t, entity.PartyKindSupplier, "Finca El Palmar")
	customer := e.f.Party(t, entity.PartyKindCustomer, "Tienda La 14")
	rice := e.f.Product(t, "ARZ", entity.ProductTypeFinishedGood, "1", "100")

	po, err := e.purchases.Commit(ctx, trading.OrderInput{
		PartyID: supplier.ID,
		Lines:   []trading.LineInput{{ProductID: rice.ID, Quantity: dec("10"), UnitPrice: dec("100")}},
	})
	require.NoError(t, err)
	_, err = e.sales.Commit(ctx, trading.OrderInput{
		PartyID:    customer.ID,
		PaidAmount: dec("500"),
		Lines:      []trading.LineInput{{ProductID: rice.ID, Quantity: dec("10"), UnitPrice: dec("200")}},
	})
	require.NoError(t, err)
	_, err = e.sales.Commit(ctx, trading.OrderInput{
		PartyID:    customer.ID,
		PaidAmount: dec("200"),
		Lines:      []trading.LineInput{{ProductID: rice.ID, Quantity: dec("1"), UnitPrice: dec("200")}},
	})
	require.NoError(t, err)

	rep, err := e.uc.Outstanding(ctx)
	require.NoError(t, err)
	require.Len(t, rep.Receivable, 1, "la venta pagada no aparece")
	assert.Equal(t, "Tienda La 14", rep.Receivable[0].PartyName)
	assert.Equal(t, "1500", rep.TotalReceivable.String())
	require.Len(t, rep.Payable, 1)
	assert.Equal(t, "1000", rep.TotalPayable.String())

	data, name, err := e.uc.OrderPDF(ctx, entity.OrderKindPurchase, po.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "orden_compra_"+po.Number+".pdf", name)
	assert.Equal(t, "Finca El Palmar", e.pdf.last.Party.Name)
	require.Len(t, e.pdf.last.Lines, 1)
	assert.Equal(t, "ARZ", e.pdf.last.Lines[0].ProductCode)

	_, _, err = e.uc.OrderPDF(ctx, entity.OrderKindSale, po.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
