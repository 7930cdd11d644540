// Package trading orquesta órdenes de compra (entrada de existencias) y de venta (salida).
package trading

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/application/ports"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
	"github.com/jhoicas/molino-api/pkg/logger"
)

// Flow parametriza el orquestador: compras acreditan existencias, ventas las debitan.
type Flow struct {
	OrderKind entity.OrderKind
	PartyKind entity.PartyKind
	Prefix    string
	Outbound  bool   // true: debita y exige existencias suficientes
	partyName string // para mensajes
}

var (
	// PurchaseFlow órdenes de compra a proveedores.
	PurchaseFlow = Flow{OrderKind: entity.OrderKindPurchase, PartyKind: entity.PartyKindSupplier, Prefix: "PO", partyName: "proveedor"}
	// SalesFlow órdenes de venta a clientes.
	SalesFlow = Flow{OrderKind: entity.OrderKindSale, PartyKind: entity.PartyKindCustomer, Prefix: "SO", Outbound: true, partyName: "cliente"}
)

// LineInput línea solicitada.
type LineInput struct {
	ProductID string
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// OrderInput entrada para validar o confirmar una orden.
type OrderInput struct {
	PartyID    string
	Date       time.Time // cero = ahora
	Lines      []LineInput
	PaidAmount decimal.Decimal // pago inicial, >= 0
	Notes      string
	CreatedBy  string
}

// Deps dependencias del orquestador.
type Deps struct {
	Products repository.ProductRepository
	Parties  repository.PartyRepository
	Orders   repository.OrderRepository
	Stock    repository.StockRepository
	Locker   ports.Locker
	TxRunner ports.TxRunner
	Log      *logger.Logger
}

// Orchestrator valida y confirma órdenes de un Flow.
// Commit toma el lock de los productos, re-valida dentro de la transacción y aplica todo o nada.
type Orchestrator struct {
	flow     Flow
	products repository.ProductRepository
	parties  repository.PartyRepository
	orders   repository.OrderRepository
	stock    repository.StockRepository
	locker   ports.Locker
	txRunner ports.TxRunner
	log      *logger.Logger
	now      func() time.Time
}

// NewPurchaseOrchestrator orquestador de compras.
func NewPurchaseOrchestrator(d Deps) *Orchestrator {
	return newOrchestrator(PurchaseFlow, d)
}

// NewSalesOrchestrator orquestador de ventas.
func NewSalesOrchestrator(d Deps) *Orchestrator {
	return newOrchestrator(SalesFlow, d)
}

func newOrchestrator(flow Flow, d Deps) *Orchestrator {
	return &Orchestrator{
		flow:     flow,
		products: d.Products,
		parties:  d.Parties,
		orders:   d.Orders,
		stock:    d.Stock,
		locker:   d.Locker,
		txRunner: d.TxRunner,
		log:      d.Log.Component(string(flow.OrderKind)),
		now:      time.Now,
	}
}

// Flow devuelve la parametrización del orquestador.
func (o *Orchestrator) Flow() Flow { return o.flow }

// Validate revisa la orden contra el estado actual sin aplicar nada.
// El resultado acumula todas las violaciones; el error es solo de infraestructura.
func (o *Orchestrator) Validate(ctx context.Context, in OrderInput) (*domain.ValidationResult, error) {
	return o.validate(ctx, o.stock, in)
}

func (o *Orchestrator) validate(ctx context.Context, stock repository.StockRepository, in OrderInput) (*domain.ValidationResult, error) {
	res := domain.NewValidationResult()

	if err := o.validateParty(ctx, in.PartyID, res); err != nil {
		return nil, err
	}
	if in.PaidAmount.IsNegative() {
		res.Addf("el pago inicial no puede ser negativo")
	}
	if len(in.Lines) == 0 {
		res.Addf("la orden debe tener al menos una línea")
		return res, nil
	}

	l := ledger.New(stock)
	requested := make(map[string]decimal.Decimal, len(in.Lines))
	for i, line := range in.Lines {
		n := i + 1
		product, err := o.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			res.Addf("línea %d: producto %s no encontrado", n, line.ProductID)
			continue
		}
		if !product.Active {
			res.Addf("línea %d: el producto %s está inactivo", n, product.Code)
		}
		if !line.Quantity.IsPositive() {
			res.Addf("línea %d: la cantidad debe ser mayor que cero", n)
		}
		if !line.UnitPrice.IsPositive() {
			res.Addf("línea %d: el precio unitario debe ser mayor que cero", n)
		}

		available, err := l.GetQuantity(ctx, product.ID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			res.Addf("línea %d: el producto %s no tiene existencias inicializadas", n, product.Code)
			continue
		}
		if !o.flow.Outbound || !line.Quantity.IsPositive() {
			continue
		}
		total := requested[product.ID].Add(line.Quantity)
		requested[product.ID] = total
		if available.LessThan(total) {
			res.AddInsufficientf("línea %d: stock insuficiente de %s, requerido %s, disponible %s",
				n, product.Code, total.String(), available.String())
		}
	}
	return res, nil
}

func (o *Orchestrator) validateParty(ctx context.Context, partyID string, res *domain.ValidationResult) error {
	if partyID == "" {
		res.Addf("el %s es obligatorio", o.flow.partyName)
		return nil
	}
	party, err := o.parties.GetByID(ctx, partyID)
	if err != nil {
		return err
	}
	switch {
	case party == nil:
		res.Addf("%s %s no encontrado", o.flow.partyName, partyID)
	case party.Kind != o.flow.PartyKind:
		res.Addf("%s no es un %s", party.Name, o.flow.partyName)
	case !party.Active:
		res.Addf("el %s %s está inactivo", o.flow.partyName, party.Name)
	}
	return nil
}

// Commit confirma la orden: número, cabecera, líneas y movimientos de existencias en una sola transacción.
// Si la validación falla devuelve *domain.ValidationError y no aplica nada.
func (o *Orchestrator) Commit(ctx context.Context, in OrderInput) (*entity.Order, error) {
	keys := make([]string, 0, len(in.Lines))
	for _, line := range in.Lines {
		keys = append(keys, ports.ProductKey(line.ProductID))
	}
	unlock, err := o.locker.Lock(ctx, keys...)
	if err != nil {
		return nil, err
	}
	defer unlock()

	var order *entity.Order
	err = o.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		res, err := o.validate(ctx, repos.Stock, in)
		if err != nil {
			return err
		}
		if err := res.Err(); err != nil {
			return err
		}

		now := o.now()
		date := in.Date
		if date.IsZero() {
			date = now
		}
		number, err := repos.Numbers.Next(ctx, o.flow.Prefix, date)
		if err != nil {
			return fmt.Errorf("generar número: %w", err)
		}

		order = &entity.Order{
			ID:        uuid.New().String(),
			Kind:      o.flow.OrderKind,
			Number:    number,
			PartyID:   in.PartyID,
			Date:      date,
			Notes:     in.Notes,
			CreatedBy: in.CreatedBy,
			CreatedAt: now,
			UpdatedAt: now,
		}
		for _, line := range in.Lines {
			order.Lines = append(order.Lines,
				entity.NewOrderLine(uuid.New().String(), order.ID, line.ProductID, line.Quantity, line.UnitPrice))
		}
		order.RecalculateTotals()
		order.SetPaidAmount(in.PaidAmount)

		if err := repos.Orders.Create(ctx, order); err != nil {
			return err
		}

		l := ledger.New(repos.Stock)
		for i, line := range order.Lines {
			delta := line.Quantity
			if o.flow.Outbound {
				delta = delta.Neg()
			}
			if _, err := l.Adjust(ctx, line.ProductID, delta); err != nil {
				return fmt.Errorf("línea %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		o.log.Warn().Err(err).Str("party_id", in.PartyID).Int("lines", len(in.Lines)).Msg("orden rechazada")
		return nil, err
	}

	o.log.Info().
		Str("number", order.Number).
		Str("party_id", order.PartyID).
		Str("total_quantity", order.TotalQuantity.String()).
		Str("total_amount", order.TotalAmount.String()).
		Msg("orden confirmada")
	return order, nil
}

// Get devuelve la orden con sus líneas. domain.ErrNotFound si no existe o es de otro tipo.
func (o *Orchestrator) Get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := o.orders.GetByID(ctx, o.flow.OrderKind, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: orden %s", domain.ErrNotFound, id)
	}
	return order, nil
}

// List lista cabeceras del tipo del orquestador.
func (o *Orchestrator) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	filter.Kind = o.flow.OrderKind
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: estado de pago %q", domain.ErrInvalidInput, filter.Status)
	}
	return o.orders.List(ctx, filter)
}
