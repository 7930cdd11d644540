package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/application/ports"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/infrastructure/memory"
)

func seedStock(t *testing.T, s *memory.Store, productID string, qty int64) {
	t.Helper()
	err := memory.NewStockRepository(s).Create(context.Background(), &entity.StockLedgerEntry{
		ProductID: productID,
		Quantity:  decimal.NewFromInt(qty),
		UpdatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func quantity(t *testing.T, s *memory.Store, productID string) decimal.Decimal {
	t.Helper()
	e, err := memory.NewStockRepository(s).Get(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e.Quantity
}

func TestTxRunner_CommitAplicaTodo(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedStock(t, s, "p1", 10)

	err := memory.NewTxRunner(s).Run(ctx, func(repos ports.TxRepos) error {
		e, err := repos.Stock.GetForUpdate(ctx, "p1")
		require.NoError(t, err)
		e.Quantity = decimal.NewFromInt(4)
		if err := repos.Stock.Save(ctx, e); err != nil {
			return err
		}
		// dentro de la tx se lee lo escrito
		again, err := repos.Stock.Get(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "4", again.Quantity.String())

		return repos.Orders.Create(ctx, &entity.Order{ID: "o1", Kind: entity.OrderKindSale, Number: "SO-2026-00001"})
	})
	require.NoError(t, err)

	assert.Equal(t, "4", quantity(t, s, "p1").String())
	o, err := memory.NewOrderRepository(s).GetByID(ctx, entity.OrderKindSale, "o1")
	require.NoError(t, err)
	require.NotNil(t, o)
}

func TestTxRunner_RollbackNoDejaRastro(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedStock(t, s, "p1", 10)
	boom := errors.New("boom")

	err := memory.NewTxRunner(s).Run(ctx, func(repos ports.TxRepos) error {
		e, _ := repos.Stock.GetForUpdate(ctx, "p1")
		e.Quantity = decimal.Zero
		_ = repos.Stock.Save(ctx, e)
		_ = repos.Production.Create(ctx, &entity.ProductionRecord{ID: "pr1"})
		return boom
	})
	require.ErrorIs(t, err, boom)

	assert.Equal(t, "10", quantity(t, s, "p1").String())
	p, err := memory.NewProductionRepository(s).GetByID(ctx, "pr1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestTxRunner_ConflictoSiLaEntradaCambio(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seedStock(t, s, "p1", 10)

	err := memory.NewTxRunner(s).Run(ctx, func(repos ports.TxRepos) error {
		e, _ := repos.Stock.GetForUpdate(ctx, "p1")
		// otra escritura fuera de la tx entre la lectura y el commit
		outside, _ := memory.NewStockRepository(s).Get(ctx, "p1")
		outside.Quantity = decimal.NewFromInt(1)
		require.NoError(t, memory.NewStockRepository(s).Save(ctx, outside))

		e.Quantity = decimal.NewFromInt(9)
		return repos.Stock.Save(ctx, e)
	})
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, "1", quantity(t, s, "p1").String())
}

func TestStockRepo_SaveRechazaNegativo(t *testing.T) {
	s := memory.NewStore()
	seedStock(t, s, "p1", 1)
	err := memory.NewStockRepository(s).Save(context.Background(), &entity.StockLedgerEntry{
		ProductID: "p1", Quantity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestNumerator_SecuenciaPorPrefijoYAnio(t *testing.T) {
	ctx := context.Background()
	n := memory.NewNumerator(memory.NewStore())
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	a, _ := n.Next(ctx, "SO", at)
	b, _ := n.Next(ctx, "SO", at)
	c, _ := n.Next(ctx, "PO", at)
	d, _ := n.Next(ctx, "SO", at.AddDate(1, 0, 0))

	assert.Equal(t, "SO-2026-00001", a)
	assert.Equal(t, "SO-2026-00002", b)
	assert.Equal(t, "PO-2026-00001", c)
	assert.Equal(t, "SO-2027-00001", d)
}

func TestOrderRepo_NumeroUnicoPorTipo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewOrderRepository(memory.NewStore())
	require.NoError(t, repo.Create(ctx, &entity.Order{ID: "a", Kind: entity.OrderKindSale, Number: "X-1"}))
	require.NoError(t, repo.Create(ctx, &entity.Order{ID: "b", Kind: entity.OrderKindPurchase, Number: "X-1"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.Order{ID: "c", Kind: entity.OrderKindSale, Number: "X-1"}), domain.ErrDuplicate)
}
