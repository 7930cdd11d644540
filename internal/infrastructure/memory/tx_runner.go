package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/molino-api/internal/application/ports"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// txState escrituras pendientes de una transacción en memoria.
type txState struct {
	stock        map[string]entity.StockLedgerEntry
	stockCreated map[string]bool
	stockReadVer map[string]int64
	orders       map[string]entity.Order // creadas o con pago actualizado
	ordersNew    map[string]bool
	production   []entity.ProductionRecord
}

func newTxState() *txState {
	return &txState{
		stock:        map[string]entity.StockLedgerEntry{},
		stockCreated: map[string]bool{},
		stockReadVer: map[string]int64{},
		orders:       map[string]entity.Order{},
		ordersNew:    map[string]bool{},
	}
}

// TxRunner transacciones sobre el Store: fn escribe en un overlay y el commit lo aplica
// completo bajo el mutex, o nada si fn falla.
// Si una entrada de existencias leída cambió entre la lectura y el commit, devuelve domain.ErrConflict.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) Run(ctx context.Context, fn func(repos ports.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := newTxState()
	repos := ports.TxRepos{
		Stock:      &StockRepo{s: r.s, tx: tx},
		Orders:     &OrderRepo{s: r.s, tx: tx},
		Production: &ProductionRepo{s: r.s, tx: tx},
		Numbers:    NewNumerator(r.s),
	}
	if err := fn(repos); err != nil {
		return err
	}
	return r.commit(tx)
}

func (r *TxRunner) commit(tx *txState) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id := range tx.stock {
		_, exists := r.s.stock[id]
		if tx.stockCreated[id] {
			if exists {
				return fmt.Errorf("commit transaction: %w: existencias del producto %s", domain.ErrDuplicate, id)
			}
			continue
		}
		if ver, read := tx.stockReadVer[id]; read && r.s.stockVer[id] != ver {
			return fmt.Errorf("commit transaction: %w: existencias del producto %s modificadas", domain.ErrConflict, id)
		}
	}
	for id, o := range tx.orders {
		if !tx.ordersNew[id] {
			continue
		}
		if err := r.s.checkOrderNumber(o); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
	}

	for id, e := range tx.stock {
		r.s.stock[id] = e
		r.s.stockVer[id]++
	}
	for id, o := range tx.orders {
		if tx.ordersNew[id] {
			r.s.orders[id] = o
			continue
		}
		base, ok := r.s.orders[id]
		if !ok {
			continue
		}
		base.PaidAmount = o.PaidAmount
		base.PaymentStatus = o.PaymentStatus
		base.UpdatedAt = o.UpdatedAt
		r.s.orders[id] = base
	}
	for _, p := range tx.production {
		r.s.production[p.ID] = p
	}
	return nil
}
