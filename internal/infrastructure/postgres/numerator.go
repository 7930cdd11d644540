package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.NumberGenerator = (*Numerator)(nil)

// Numerator consecutivos por prefijo y año en document_sequences.
// Dentro de una tx el UPSERT bloquea la fila del prefijo: dos commits del mismo tipo se serializan aquí.
type Numerator struct {
	q Querier
}

// NewNumerator construye el generador. Pasar la tx del commit para que un rollback no consuma el número.
func NewNumerator(q Querier) *Numerator {
	return &Numerator{q: q}
}

// Next devuelve PREFIX-YYYY-NNNNN.
func (n *Numerator) Next(ctx context.Context, prefix string, at time.Time) (string, error) {
	year := at.Year()
	var seq int64
	err := n.q.QueryRow(ctx, `
		INSERT INTO document_sequences (prefix, year, last_value) VALUES ($1, $2, 1)
		ON CONFLICT (prefix, year) DO UPDATE SET last_value = document_sequences.last_value + 1
		RETURNING last_value`, prefix, year).Scan(&seq)
	if err != nil {
		return "", fmt.Errorf("next document number %s: %w", prefix, err)
	}
	return repository.DocumentNumber(prefix, year, seq), nil
}
