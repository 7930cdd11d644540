package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/application/ports"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/inventory"
	"github.com/jhoicas/molino-api/internal/domain/repository"
	"github.com/jhoicas/molino-api/pkg/logger"
)

// StockView proyección de lectura de una entrada con su estado derivado.
type StockView struct {
	ProductID   string
	ProductCode string
	ProductName string
	ProductType entity.ProductType
	Active      bool
	Quantity    decimal.Decimal
	MinLevel    decimal.Decimal
	MaxLevel    decimal.Decimal
	Status      inventory.StockStatus
	UpdatedAt   time.Time
}

// Service expone el libro de existencias a la API: cada mutación toma el lock del producto
// y corre en su propia transacción.
type Service struct {
	products repository.ProductRepository
	stock    repository.StockRepository
	locker   ports.Locker
	txRunner ports.TxRunner
	log      *logger.Logger
}

// NewService construye el servicio.
func NewService(
	products repository.ProductRepository,
	stock repository.StockRepository,
	locker ports.Locker,
	txRunner ports.TxRunner,
	log *logger.Logger,
) *Service {
	return &Service{
		products: products,
		stock:    stock,
		locker:   locker,
		txRunner: txRunner,
		log:      log.Component("ledger"),
	}
}

// GetQuantity cantidad disponible de un producto.
func (s *Service) GetQuantity(ctx context.Context, productID string) (decimal.Decimal, error) {
	return New(s.stock).GetQuantity(ctx, productID)
}

// IsSufficient ver Ledger.IsSufficient.
func (s *Service) IsSufficient(ctx context.Context, productID string, required decimal.Decimal) (bool, error) {
	return New(s.stock).IsSufficient(ctx, productID, required)
}

// Initialize crea la entrada de existencias de un producto existente.
func (s *Service) Initialize(ctx context.Context, productID string, quantity, min, max decimal.Decimal) (*StockView, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, productID)
	}
	var entry *entity.StockLedgerEntry
	err = s.withLock(ctx, productID, func(repos ports.TxRepos) error {
		e, err := New(repos.Stock).Initialize(ctx, productID, quantity, min, max)
		entry = e
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", productID).Str("quantity", quantity.String()).Msg("existencias inicializadas")
	return toView(product, entry), nil
}

// Adjust ajuste manual de existencias (conteo físico, mermas de bodega).
func (s *Service) Adjust(ctx context.Context, productID string, delta decimal.Decimal) (*StockView, error) {
	if delta.IsZero() {
		return nil, fmt.Errorf("%w: el ajuste no puede ser cero", domain.ErrInvalidInput)
	}
	err := s.withLock(ctx, productID, func(repos ports.TxRepos) error {
		_, err := New(repos.Stock).Adjust(ctx, productID, delta)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", productID).Str("delta", delta.String()).Msg("ajuste de existencias")
	return s.View(ctx, productID)
}

// SetThresholds actualiza los niveles mínimo y máximo.
func (s *Service) SetThresholds(ctx context.Context, productID string, min, max decimal.Decimal) (*StockView, error) {
	if err := ValidateThresholds(min, max); err != nil {
		return nil, err
	}
	err := s.withLock(ctx, productID, func(repos ports.TxRepos) error {
		_, err := New(repos.Stock).SetThresholds(ctx, productID, min, max)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.View(ctx, productID)
}

// View devuelve la entrada de un producto con su estado.
func (s *Service) View(ctx context.Context, productID string) (*StockView, error) {
	e, err := s.stock.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: existencias del producto %s", domain.ErrNotFound, productID)
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toView(product, e), nil
}

// List devuelve todas las entradas con su estado, incluidas las de productos inactivos.
func (s *Service) List(ctx context.Context) ([]StockView, error) {
	entries, err := s.stock.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]StockView, 0, len(entries))
	for _, e := range entries {
		product, err := s.products.GetByID(ctx, e.ProductID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toView(product, e))
	}
	return out, nil
}

func (s *Service) withLock(ctx context.Context, productID string, fn func(repos ports.TxRepos) error) error {
	unlock, err := s.locker.Lock(ctx, ports.ProductKey(productID))
	if err != nil {
		return err
	}
	defer unlock()
	return s.txRunner.Run(ctx, fn)
}

func toView(p *entity.Product, e *entity.StockLedgerEntry) *StockView {
	v := &StockView{
		ProductID: e.ProductID,
		Quantity:  e.Quantity,
		MinLevel:  e.MinLevel,
		MaxLevel:  e.MaxLevel,
		Status:    e.Status(),
		UpdatedAt: e.UpdatedAt,
	}
	if p != nil {
		v.ProductCode = p.Code
		v.ProductName = p.Name
		v.ProductType = p.Type
		v.Active = p.Active
	}
	return v
}
