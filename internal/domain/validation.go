package domain

import (
	"fmt"
	"strings"
)

// ValidationResult acumula todas las violaciones de una transacción antes de aplicar
// cualquier movimiento. No se corta en el primer error.
type ValidationResult struct {
	Errors            []string
	insufficientStock bool
}

// NewValidationResult construye un resultado vacío (válido).
func NewValidationResult() *ValidationResult {
	return &ValidationResult{Errors: []string{}}
}

// Addf registra una violación.
func (r *ValidationResult) Addf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// AddInsufficientf registra una violación por falta de existencias.
func (r *ValidationResult) AddInsufficientf(format string, args ...any) {
	r.insufficientStock = true
	r.Addf(format, args...)
}

// Valid indica si no hay violaciones.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// InsufficientStock indica si alguna violación es por falta de existencias.
func (r *ValidationResult) InsufficientStock() bool {
	return r.insufficientStock
}

// Err devuelve nil si es válido o un *ValidationError con la lista completa.
func (r *ValidationResult) Err() error {
	if r.Valid() {
		return nil
	}
	errs := make([]string, len(r.Errors))
	copy(errs, r.Errors)
	return &ValidationError{Errors: errs, InsufficientStock: r.insufficientStock}
}

// ValidationError error tipado con todas las violaciones.
// errors.Is(err, ErrValidationFailed) siempre es true; errors.Is(err, ErrInsufficientStock)
// lo es cuando alguna violación es por existencias.
type ValidationError struct {
	Errors            []string
	InsufficientStock bool
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Errors, "; ")
}

// Unwrap expone los sentinelas para errors.Is.
func (e *ValidationError) Unwrap() []error {
	if e.InsufficientStock {
		return []error{ErrValidationFailed, ErrInsufficientStock}
	}
	return []error{ErrValidationFailed}
}
