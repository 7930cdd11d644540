// Package ledger es el único punto de mutación de las existencias por producto.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

// Ledger aplica las reglas del libro de existencias sobre un StockRepository.
// No bloquea: quien lo usa debe tener el lock de las claves y, si corresponde, una transacción abierta.
type Ledger struct {
	stock repository.StockRepository
	now   func() time.Time
}

// New construye un Ledger sobre el repositorio dado (pool o tx).
func New(stock repository.StockRepository) *Ledger {
	return &Ledger{stock: stock, now: time.Now}
}

// GetQuantity devuelve la cantidad disponible. domain.ErrNotFound si no hay entrada.
func (l *Ledger) GetQuantity(ctx context.Context, productID string) (decimal.Decimal, error) {
	e, err := l.stock.Get(ctx, productID)
	if err != nil {
		return decimal.Zero, err
	}
	if e == nil {
		return decimal.Zero, fmt.Errorf("%w: existencias del producto %s", domain.ErrNotFound, productID)
	}
	return e.Quantity, nil
}

// Adjust suma delta a la cantidad (negativo descuenta). Si el resultado fuera negativo
// devuelve domain.ErrInsufficientStock y no modifica nada; nunca recorta a cero.
func (l *Ledger) Adjust(ctx context.Context, productID string, delta decimal.Decimal) (decimal.Decimal, error) {
	e, err := l.forUpdate(ctx, productID)
	if err != nil {
		return decimal.Zero, err
	}
	next := e.Quantity.Add(delta)
	if next.IsNegative() {
		return e.Quantity, fmt.Errorf("%w: producto %s, disponible %s, requerido %s",
			domain.ErrInsufficientStock, productID, e.Quantity.String(), delta.Neg().String())
	}
	e.Quantity = next
	e.UpdatedAt = l.now()
	if err := l.stock.Save(ctx, e); err != nil {
		return decimal.Zero, err
	}
	return next, nil
}

// SetThresholds configura los niveles mínimo y máximo (max = 0 sin tope).
func (l *Ledger) SetThresholds(ctx context.Context, productID string, min, max decimal.Decimal) (*entity.StockLedgerEntry, error) {
	if err := ValidateThresholds(min, max); err != nil {
		return nil, err
	}
	e, err := l.forUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	e.MinLevel = min
	e.MaxLevel = max
	e.UpdatedAt = l.now()
	if err := l.stock.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// IsSufficient indica si hay al menos required unidades. required debe ser > 0.
func (l *Ledger) IsSufficient(ctx context.Context, productID string, required decimal.Decimal) (bool, error) {
	if !required.IsPositive() {
		return false, fmt.Errorf("%w: la cantidad requerida debe ser mayor que cero", domain.ErrInvalidInput)
	}
	q, err := l.GetQuantity(ctx, productID)
	if err != nil {
		return false, err
	}
	return q.GreaterThanOrEqual(required), nil
}

// Initialize crea la entrada del producto. domain.ErrDuplicate si ya existe.
func (l *Ledger) Initialize(ctx context.Context, productID string, quantity, min, max decimal.Decimal) (*entity.StockLedgerEntry, error) {
	if quantity.IsNegative() {
		return nil, fmt.Errorf("%w: la cantidad inicial no puede ser negativa", domain.ErrInvalidInput)
	}
	if err := ValidateThresholds(min, max); err != nil {
		return nil, err
	}
	existing, err := l.stock.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: el producto %s ya tiene existencias", domain.ErrDuplicate, productID)
	}
	e := &entity.StockLedgerEntry{
		ProductID: productID,
		Quantity:  quantity,
		MinLevel:  min,
		MaxLevel:  max,
		UpdatedAt: l.now(),
	}
	if err := l.stock.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ValidateThresholds: min >= 0, max >= 0 y, si max > 0, max >= min.
func ValidateThresholds(min, max decimal.Decimal) error {
	if min.IsNegative() || max.IsNegative() {
		return fmt.Errorf("%w: los niveles no pueden ser negativos", domain.ErrInvalidRange)
	}
	if max.IsPositive() && max.LessThan(min) {
		return fmt.Errorf("%w: máximo %s menor que mínimo %s", domain.ErrInvalidRange, max.String(), min.String())
	}
	return nil
}

func (l *Ledger) forUpdate(ctx context.Context, productID string) (*entity.StockLedgerEntry, error) {
	e, err := l.stock.GetForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: existencias del producto %s", domain.ErrNotFound, productID)
	}
	return e, nil
}
