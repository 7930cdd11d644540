package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

const productionColumns = `id, number, date, raw_product_id, finished_product_id, input_quantity, output_quantity,
	waste_quantity, conversion_rate, machine_id, operator_id, notes, created_by, created_at, updated_at`

// ProductionRepo corridas de producción sobre PostgreSQL.
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador.
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

func (r *ProductionRepo) Create(ctx context.Context, p *entity.ProductionRecord) error {
	query := `INSERT INTO production_records (` + productionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Number, p.Date, p.RawProductID, p.FinishedProductID, p.InputQuantity, p.OutputQuantity,
		p.WasteQuantity, p.ConversionRate, nullable(p.MachineID), nullable(p.OperatorID), p.Notes,
		p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: número %s", domain.ErrDuplicate, p.Number)
		}
		return fmt.Errorf("insert production record: %w", err)
	}
	return nil
}

func (r *ProductionRepo) GetByID(ctx context.Context, id string) (*entity.ProductionRecord, error) {
	p, err := scanProduction(r.q.QueryRow(ctx, `SELECT `+productionColumns+` FROM production_records WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production record: %w", err)
	}
	return p, nil
}

// ListByDateRange corridas con from <= date < to, más recientes primero. Fechas cero = sin límite.
func (r *ProductionRepo) ListByDateRange(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.ProductionRecord, error) {
	var args []any
	query := `SELECT ` + productionColumns + ` FROM production_records WHERE TRUE`
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND date < $%d", len(args))
	}
	query += ` ORDER BY date DESC, number DESC` + limitOffset(&args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list production records: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionRecord
	for rows.Next() {
		p, err := scanProduction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production record: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProduction(row pgx.Row) (*entity.ProductionRecord, error) {
	var (
		p                   entity.ProductionRecord
		machineID, operator *string
	)
	err := row.Scan(&p.ID, &p.Number, &p.Date, &p.RawProductID, &p.FinishedProductID, &p.InputQuantity,
		&p.OutputQuantity, &p.WasteQuantity, &p.ConversionRate, &machineID, &operator, &p.Notes,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if machineID != nil {
		p.MachineID = *machineID
	}
	if operator != nil {
		p.OperatorID = *operator
	}
	return &p, nil
}
