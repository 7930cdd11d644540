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

var _ repository.PartyRepository = (*PartyRepo)(nil)

const partyColumns = `id, kind, name, tax_id, phone, email, address, active, created_at, updated_at`

// PartyRepo proveedores y clientes sobre PostgreSQL.
type PartyRepo struct {
	q Querier
}

// NewPartyRepository construye el adaptador.
func NewPartyRepository(q Querier) *PartyRepo {
	return &PartyRepo{q: q}
}

func (r *PartyRepo) Create(ctx context.Context, p *entity.Party) error {
	query := `INSERT INTO parties (` + partyColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Kind, p.Name, p.TaxID, p.Phone, p.Email, p.Address, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

func (r *PartyRepo) GetByID(ctx context.Context, id string) (*entity.Party, error) {
	return r.getOne(ctx, `SELECT `+partyColumns+` FROM parties WHERE id = $1`, id)
}

func (r *PartyRepo) GetByKindAndTaxID(ctx context.Context, kind entity.PartyKind, taxID string) (*entity.Party, error) {
	return r.getOne(ctx, `SELECT `+partyColumns+` FROM parties WHERE kind = $1 AND tax_id = $2`, kind, taxID)
}

func (r *PartyRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Party, error) {
	p, err := scanParty(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get party: %w", err)
	}
	return p, nil
}

func (r *PartyRepo) Update(ctx context.Context, p *entity.Party) error {
	query := `
		UPDATE parties
		SET name = $2, tax_id = $3, phone = $4, email = $5, address = $6, active = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, p.ID, p.Name, p.TaxID, p.Phone, p.Email, p.Address, p.Active, p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update party: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PartyRepo) ListByKind(ctx context.Context, kind entity.PartyKind, limit, offset int) ([]*entity.Party, error) {
	var args []any
	query := `SELECT ` + partyColumns + ` FROM parties`
	if kind != "" {
		args = append(args, kind)
		query += ` WHERE kind = $1`
	}
	query += ` ORDER BY name` + limitOffset(&args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Party
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("scan party: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanParty(row pgx.Row) (*entity.Party, error) {
	var p entity.Party
	if err := row.Scan(&p.ID, &p.Kind, &p.Name, &p.TaxID, &p.Phone, &p.Email, &p.Address,
		&p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
