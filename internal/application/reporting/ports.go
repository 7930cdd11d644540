package reporting

import (
	"context"
	"time"

	"github.com/jhoicas/molino-api/internal/application/ledger"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

// OrderLineForPDF línea enriquecida con datos del producto.
type OrderLineForPDF struct {
	entity.OrderLine
	ProductCode string
	ProductName string
	UnitMeasure string
}

// OrderDocument todo lo necesario para imprimir una orden.
type OrderDocument struct {
	CompanyName string
	Order       *entity.Order
	Party       *entity.Party
	Lines       []OrderLineForPDF
}

// OrderPDFGenerator puerto de salida para generar el PDF de una orden (implementado en infrastructure/pdf).
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, doc OrderDocument) ([]byte, error)
}

// StockLister fuente del reporte de existencias (ledger.Service).
type StockLister interface {
	List(ctx context.Context) ([]ledger.StockView, error)
}

// OrderReader consultas de órdenes de un tipo (trading.Orchestrator).
type OrderReader interface {
	Get(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error)
}

// ProductionReader consultas de corridas (production.UseCase).
type ProductionReader interface {
	List(ctx context.Context, from, to time.Time, limit, offset int) ([]*entity.ProductionRecord, error)
	IsEfficient(r *entity.ProductionRecord) bool
}
