// Package testutil arma el grafo de dependencias en memoria para los tests de casos de uso.
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/infrastructure/lock"
	"github.com/jhoicas/molino-api/internal/infrastructure/memory"
)

// Fixture repositorios en memoria compartiendo un Store.
type Fixture struct {
	Store      *memory.Store
	Products   *memory.ProductRepo
	Parties    *memory.PartyRepo
	Machines   *memory.MachineRepo
	Staff      *memory.StaffRepo
	Stock      *memory.StockRepo
	Orders     *memory.OrderRepo
	Production *memory.ProductionRepo
	TxRunner   *memory.TxRunner
	Locker     *lock.KeyedMutex
}

// New construye un Fixture vacío.
func New() *Fixture {
	s := memory.NewStore()
	return &Fixture{
		Store:      s,
		Products:   memory.NewProductRepository(s),
		Parties:    memory.NewPartyRepository(s),
		Machines:   memory.NewMachineRepository(s),
		Staff:      memory.NewStaffRepository(s),
		Stock:      memory.NewStockRepository(s),
		Orders:     memory.NewOrderRepository(s),
		Production: memory.NewProductionRepository(s),
		TxRunner:   memory.NewTxRunner(s),
		Locker:     lock.NewKeyedMutex(),
	}
}

// Dec atajo para decimales en tests.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Product crea un producto activo con existencias iniciales qty.
func (f *Fixture) Product(t *testing.T, code string, typ entity.ProductType, price, qty string) *entity.Product {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Code:        code,
		Name:        code,
		Type:        typ,
		UnitPrice:   Dec(price),
		UnitMeasure: "kg",
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, f.Products.Create(ctx, p))
	require.NoError(t, f.Stock.Create(ctx, &entity.StockLedgerEntry{
		ProductID: p.ID,
		Quantity:  Dec(qty),
		UpdatedAt: now,
	}))
	return p
}

// Party crea un proveedor o cliente activo.
func (f *Fixture) Party(t *testing.T, kind entity.PartyKind, name string) *entity.Party {
	t.Helper()
	now := time.Now()
	p := &entity.Party{
		ID:        uuid.New().String(),
		Kind:      kind,
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, f.Parties.Create(context.Background(), p))
	return p
}

// Quantity cantidad actual en el libro.
func (f *Fixture) Quantity(t *testing.T, productID string) decimal.Decimal {
	t.Helper()
	e, err := f.Stock.Get(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e.Quantity
}
