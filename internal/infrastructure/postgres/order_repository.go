package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, kind, number, party_id, date, total_quantity, total_amount, paid_amount,
	payment_status, notes, created_by, created_at, updated_at`

// OrderRepo órdenes de compra y venta (cabecera + líneas) sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Create debe ejecutarse dentro de una tx para que cabecera y líneas sean atómicas.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la cabecera y sus líneas en orden.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.Kind, o.Number, o.PartyID, o.Date, o.TotalQuantity, o.TotalAmount, o.PaidAmount,
		o.PaymentStatus, o.Notes, o.CreatedBy, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número %s", domain.ErrDuplicate, o.Number)
		}
		return fmt.Errorf("insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_lines (id, order_id, line_no, product_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, l := range o.Lines {
		_, err := r.q.Exec(ctx, lineQuery, l.ID, o.ID, i+1, l.ProductID, l.Quantity, l.UnitPrice, l.LineTotal)
		if err != nil {
			return fmt.Errorf("insert order line %d: %w", i+1, err)
		}
	}
	return nil
}

// GetByID obtiene la orden con sus líneas; nil si no existe o es de otro tipo.
func (r *OrderRepo) GetByID(ctx context.Context, kind entity.OrderKind, id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 AND kind = $2`
	o, err := scanOrder(r.q.QueryRow(ctx, query, id, kind))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price, line_total
		FROM order_lines WHERE order_id = $1 ORDER BY line_no`, id)
	if err != nil {
		return nil, fmt.Errorf("get order lines: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order line: %w", err)
		}
		o.Lines = append(o.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get order lines: %w", err)
	}
	return o, nil
}

// UpdatePayment persiste solo el monto pagado y el estado derivado.
func (r *OrderRepo) UpdatePayment(ctx context.Context, o *entity.Order) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE orders SET paid_amount = $3, payment_status = $4, updated_at = $5
		WHERE id = $1 AND kind = $2`,
		o.ID, o.Kind, o.PaidAmount, o.PaymentStatus, o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List devuelve cabeceras sin líneas, más recientes primero.
func (r *OrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.Order, error) {
	args := []any{f.Kind}
	where := []string{"kind = $1"}
	if f.PartyID != "" {
		args = append(args, f.PartyID)
		where = append(where, fmt.Sprintf("party_id = $%d", len(args)))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		where = append(where, fmt.Sprintf("payment_status = $%d", len(args)))
	}
	query := `SELECT ` + orderColumns + ` FROM orders WHERE ` + strings.Join(where, " AND ") +
		` ORDER BY date DESC, number DESC` + limitOffset(&args, f.Limit, f.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.Kind, &o.Number, &o.PartyID, &o.Date, &o.TotalQuantity, &o.TotalAmount,
		&o.PaidAmount, &o.PaymentStatus, &o.Notes, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
