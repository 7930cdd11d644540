package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del libro de existencias sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene la entrada del libro de un producto; nil si no fue inicializada.
func (r *StockRepo) Get(ctx context.Context, productID string) (*entity.StockLedgerEntry, error) {
	query := `
		SELECT product_id, quantity, min_level, max_level, updated_at
		FROM stock_ledger WHERE product_id = $1`
	return r.getOne(ctx, query, productID)
}

// GetForUpdate obtiene la entrada y bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, productID string) (*entity.StockLedgerEntry, error) {
	query := `
		SELECT product_id, quantity, min_level, max_level, updated_at
		FROM stock_ledger WHERE product_id = $1
		FOR UPDATE`
	return r.getOne(ctx, query, productID)
}

func (r *StockRepo) getOne(ctx context.Context, query, productID string) (*entity.StockLedgerEntry, error) {
	var e entity.StockLedgerEntry
	err := r.q.QueryRow(ctx, query, productID).Scan(&e.ProductID, &e.Quantity, &e.MinLevel, &e.MaxLevel, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &e, nil
}

// Create inicializa la entrada del libro; ErrDuplicate si ya existe.
func (r *StockRepo) Create(ctx context.Context, e *entity.StockLedgerEntry) error {
	query := `
		INSERT INTO stock_ledger (product_id, quantity, min_level, max_level, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, e.ProductID, e.Quantity, e.MinLevel, e.MaxLevel, e.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// Save persiste cantidad y niveles. El CHECK quantity >= 0 de la tabla se traduce a ErrInsufficientStock.
func (r *StockRepo) Save(ctx context.Context, e *entity.StockLedgerEntry) error {
	query := `
		UPDATE stock_ledger
		SET quantity = $2, min_level = $3, max_level = $4, updated_at = $5
		WHERE product_id = $1`
	tag, err := r.q.Exec(ctx, query, e.ProductID, e.Quantity, e.MinLevel, e.MaxLevel, e.UpdatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("%w: producto %s", domain.ErrInsufficientStock, e.ProductID)
		}
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List todas las entradas del libro ordenadas por producto.
func (r *StockRepo) List(ctx context.Context) ([]*entity.StockLedgerEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT product_id, quantity, min_level, max_level, updated_at
		FROM stock_ledger ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLedgerEntry
	for rows.Next() {
		var e entity.StockLedgerEntry
		if err := rows.Scan(&e.ProductID, &e.Quantity, &e.MinLevel, &e.MaxLevel, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
