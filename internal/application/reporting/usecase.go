// Package reporting arma proyecciones de solo lectura sobre existencias, producción y saldos.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/inventory"
	"github.com/jhoicas/molino-api/internal/domain/payment"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

// StockReport existencias con conteo por estado.
type StockReport struct {
	GeneratedAt time.Time
	Counts      map[inventory.StockStatus]int
	Items       []ledger.StockView
}

// ProductionSummary resumen de eficiencia en [From, To).
type ProductionSummary struct {
	From                  time.Time
	To                    time.Time
	Runs                  int
	TotalInput            decimal.Decimal
	TotalOutput           decimal.Decimal
	TotalWaste            decimal.Decimal
	AverageConversionRate decimal.Decimal // ponderado: ΣOutput / ΣInput × 100
	EfficientRuns         int
}

// OutstandingOrder orden con saldo.
type OutstandingOrder struct {
	Order     *entity.Order
	PartyName string
}

// OutstandingReport saldos por cobrar (ventas) y por pagar (compras).
type OutstandingReport struct {
	Receivable      []OutstandingOrder
	Payable         []OutstandingOrder
	TotalReceivable decimal.Decimal
	TotalPayable    decimal.Decimal
}

// Deps dependencias de reportes.
type Deps struct {
	Stock       StockLister
	Purchases   OrderReader
	Sales       OrderReader
	Production  ProductionReader
	Parties     repository.PartyRepository
	Products    repository.ProductRepository
	PDF         OrderPDFGenerator
	CompanyName string
}

// UseCase reportes del back office.
type UseCase struct {
	d   Deps
	now func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(d Deps) *UseCase {
	return &UseCase{d: d, now: time.Now}
}

// Stock todas las entradas del libro y conteo por estado.
func (uc *UseCase) Stock(ctx context.Context) (*StockReport, error) {
	items, err := uc.d.Stock.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[inventory.StockStatus]int{
		inventory.StatusOutOfStock: 0,
		inventory.StatusLowStock:   0,
		inventory.StatusOverstock:  0,
		inventory.StatusNormal:     0,
	}
	for _, it := range items {
		counts[it.Status]++
	}
	return &StockReport{GeneratedAt: uc.now(), Counts: counts, Items: items}, nil
}

// LowStock productos activos agotados o bajo el mínimo.
func (uc *UseCase) LowStock(ctx context.Context) ([]ledger.StockView, error) {
	items, err := uc.d.Stock.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ledger.StockView, 0)
	for _, it := range items {
		if it.Active && it.Status.NeedsReplenishment() {
			out = append(out, it)
		}
	}
	return out, nil
}

// ProductionSummary totales de las corridas en [from, to).
func (uc *UseCase) ProductionSummary(ctx context.Context, from, to time.Time) (*ProductionSummary, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: rango de fechas vacío", domain.ErrInvalidInput)
	}
	runs, err := uc.d.Production.List(ctx, from, to, 0, 0)
	if err != nil {
		return nil, err
	}
	s := &ProductionSummary{From: from, To: to, TotalInput: decimal.Zero, TotalOutput: decimal.Zero, TotalWaste: decimal.Zero}
	for _, r := range runs {
		s.Runs++
		s.TotalInput = s.TotalInput.Add(r.InputQuantity)
		s.TotalOutput = s.TotalOutput.Add(r.OutputQuantity)
		s.TotalWaste = s.TotalWaste.Add(r.WasteQuantity)
		if uc.d.Production.IsEfficient(r) {
			s.EfficientRuns++
		}
	}
	if s.TotalInput.IsPositive() {
		s.AverageConversionRate = s.TotalOutput.Div(s.TotalInput).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return s, nil
}

// Outstanding órdenes PENDING o PARTIAL de ambos tipos.
func (uc *UseCase) Outstanding(ctx context.Context) (*OutstandingReport, error) {
	rep := &OutstandingReport{TotalReceivable: decimal.Zero, TotalPayable: decimal.Zero}
	var err error
	rep.Receivable, rep.TotalReceivable, err = uc.outstanding(ctx, uc.d.Sales)
	if err != nil {
		return nil, err
	}
	rep.Payable, rep.TotalPayable, err = uc.outstanding(ctx, uc.d.Purchases)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

func (uc *UseCase) outstanding(ctx context.Context, reader OrderReader) ([]OutstandingOrder, decimal.Decimal, error) {
	out := make([]OutstandingOrder, 0)
	total := decimal.Zero
	names := map[string]string{}
	for _, st := range []payment.Status{payment.StatusPending, payment.StatusPartial} {
		orders, err := reader.List(ctx, repository.OrderFilter{Status: st})
		if err != nil {
			return nil, decimal.Zero, err
		}
		for _, o := range orders {
			if !o.Balance().IsPositive() {
				continue
			}
			name, ok := names[o.PartyID]
			if !ok {
				party, err := uc.d.Parties.GetByID(ctx, o.PartyID)
				if err != nil {
					return nil, decimal.Zero, err
				}
				if party != nil {
					name = party.Name
				}
				names[o.PartyID] = name
			}
			out = append(out, OutstandingOrder{Order: o, PartyName: name})
			total = total.Add(o.Balance())
		}
	}
	return out, total, nil
}

// OrderPDF genera el documento de una orden de compra o venta.
func (uc *UseCase) OrderPDF(ctx context.Context, kind entity.OrderKind, id string) ([]byte, string, error) {
	reader := uc.d.Purchases
	title := "orden_compra"
	if kind == entity.OrderKindSale {
		reader = uc.d.Sales
		title = "orden_venta"
	}
	order, err := reader.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}
	party, err := uc.d.Parties.GetByID(ctx, order.PartyID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener tercero: %w", err)
	}
	if party == nil {
		party = &entity.Party{ID: order.PartyID, Name: order.PartyID}
	}

	lines := make([]OrderLineForPDF, 0, len(order.Lines))
	for _, l := range order.Lines {
		item := OrderLineForPDF{OrderLine: l, ProductCode: l.ProductID, ProductName: "Producto " + l.ProductID}
		if p, pErr := uc.d.Products.GetByID(ctx, l.ProductID); pErr == nil && p != nil {
			item.ProductCode = p.Code
			item.ProductName = p.Name
			item.UnitMeasure = p.UnitMeasure
		}
		lines = append(lines, item)
	}

	pdfBytes, err := uc.d.PDF.GenerateOrderPDF(ctx, OrderDocument{
		CompanyName: uc.d.CompanyName,
		Order:       order,
		Party:       party,
		Lines:       lines,
	})
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("%s_%s.pdf", title, order.Number), nil
}
