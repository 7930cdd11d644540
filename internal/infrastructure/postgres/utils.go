package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isCheckViolation verifica si un error es una violación de CHECK (23514), p. ej. quantity >= 0.
func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514"
	}
	return false
}

// nullable convierte "" en NULL para columnas opcionales (machine_id, operator_id).
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// limitOffset agrega LIMIT/OFFSET parametrizados; limit <= 0 = sin límite.
func limitOffset(args *[]any, limit, offset int) string {
	s := ""
	if limit > 0 {
		*args = append(*args, limit)
		s += fmt.Sprintf(" LIMIT $%d", len(*args))
	}
	if offset > 0 {
		*args = append(*args, offset)
		s += fmt.Sprintf(" OFFSET $%d", len(*args))
	}
	return s
}
