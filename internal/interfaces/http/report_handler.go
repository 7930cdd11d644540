package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/application/reporting"
)

// ReportHandler reportes de solo lectura.
type ReportHandler struct {
	uc        *reporting.UseCase
	threshold decimal.Decimal
}

// NewReportHandler construye el handler. threshold es el umbral de eficiencia que se informa en el resumen.
func NewReportHandler(uc *reporting.UseCase, threshold decimal.Decimal) *ReportHandler {
	return &ReportHandler{uc: uc, threshold: threshold}
}

// Stock godoc
// @Summary      Reporte de existencias con conteo por estado
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockReportResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	rep, err := h.uc.Stock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	counts := make(map[string]int, len(rep.Counts))
	for status, n := range rep.Counts {
		counts[string(status)] = n
	}
	return c.JSON(dto.StockReportResponse{
		GeneratedAt: rep.GeneratedAt,
		Counts:      counts,
		Items:       toStockResponses(rep.Items),
	})
}

// LowStock godoc
// @Summary      Productos activos sin existencias o bajo el mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockResponse
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	views, err := h.uc.LowStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockResponses(views))
}

// Production godoc
// @Summary      Resumen de eficiencia de molienda
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD (por defecto hace 30 días)"
// @Param        to    query  string  false  "YYYY-MM-DD excluido (por defecto mañana)"
// @Success      200   {object}  dto.ProductionSummaryResponse
// @Router       /api/reports/production [get]
func (h *ReportHandler) Production(c *fiber.Ctx) error {
	var in dto.DateRangeRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	from, to, err := parseDateRange(in)
	if err != nil {
		return writeError(c, err)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if to.IsZero() {
		to = today.AddDate(0, 0, 1)
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	s, err := h.uc.ProductionSummary(c.UserContext(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ProductionSummaryResponse{
		From:                  s.From,
		To:                    s.To,
		Runs:                  s.Runs,
		TotalInput:            s.TotalInput,
		TotalOutput:           s.TotalOutput,
		TotalWaste:            s.TotalWaste,
		AverageConversionRate: s.AverageConversionRate,
		EfficientRuns:         s.EfficientRuns,
		Threshold:             h.threshold,
	})
}

// Outstanding godoc
// @Summary      Saldos por cobrar y por pagar
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OutstandingReportResponse
// @Router       /api/reports/outstanding [get]
func (h *ReportHandler) Outstanding(c *fiber.Ctx) error {
	rep, err := h.uc.Outstanding(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.OutstandingReportResponse{
		Receivable:      toOutstandingResponses(rep.Receivable),
		Payable:         toOutstandingResponses(rep.Payable),
		TotalReceivable: rep.TotalReceivable,
		TotalPayable:    rep.TotalPayable,
	})
}

func toOutstandingResponses(list []reporting.OutstandingOrder) []dto.OutstandingOrderResponse {
	out := make([]dto.OutstandingOrderResponse, 0, len(list))
	for _, it := range list {
		o := it.Order
		out = append(out, dto.OutstandingOrderResponse{
			ID:            o.ID,
			Kind:          string(o.Kind),
			Number:        o.Number,
			PartyID:       o.PartyID,
			PartyName:     it.PartyName,
			Date:          o.Date,
			TotalAmount:   o.TotalAmount,
			PaidAmount:    o.PaidAmount,
			Balance:       o.Balance(),
			PaymentStatus: string(o.PaymentStatus),
		})
	}
	return out
}
