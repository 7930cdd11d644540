package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/molino-api/internal/domain/repository"
)

var _ repository.NumberGenerator = (*Numerator)(nil)

// Numerator secuencias por prefijo y año. Asigna fuera del overlay de la transacción:
// un rollback deja un hueco en la numeración pero nunca repite un número.
type Numerator struct {
	s *Store
}

// NewNumerator construye el generador.
func NewNumerator(s *Store) *Numerator {
	return &Numerator{s: s}
}

func (n *Numerator) Next(_ context.Context, prefix string, at time.Time) (string, error) {
	key := fmt.Sprintf("%s-%d", prefix, at.Year())
	n.s.mu.Lock()
	n.s.sequences[key]++
	seq := n.s.sequences[key]
	n.s.mu.Unlock()
	return repository.DocumentNumber(prefix, at.Year(), seq), nil
}
