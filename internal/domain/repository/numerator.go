package repository

import (
	"context"
	"fmt"
	"time"
)

// NumberGenerator genera números de documento únicos por prefijo y año (PO-2026-00001).
type NumberGenerator interface {
	Next(ctx context.Context, prefix string, at time.Time) (string, error)
}

// DocumentNumber formatea PREFIJO-AÑO-NNNNN; la secuencia se reinicia cada año.
func DocumentNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, year, seq)
}
