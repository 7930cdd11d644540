package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/application/reporting"
	"github.com/jhoicas/molino-api/internal/application/trading"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
	"github.com/jhoicas/molino-api/internal/domain/payment"
	"github.com/jhoicas/molino-api/internal/domain/repository"
)

// OrderHandler compras y ventas comparten handler; el orquestador define el tipo.
type OrderHandler struct {
	uc      *trading.Orchestrator
	reports *reporting.UseCase
}

// NewOrderHandler construye el handler para el orquestador dado.
func NewOrderHandler(uc *trading.Orchestrator, reports *reporting.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc, reports: reports}
}

// Validate godoc
// @Summary      Validar una orden sin aplicarla
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Orden"
// @Success      200   {object}  dto.ValidationResponse
// @Router       /api/sales/validate [post]
func (h *OrderHandler) Validate(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.Validate(c.UserContext(), toOrderInput(in, GetUserID(c)))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toValidationResponse(res))
}

// Create godoc
// @Summary      Confirmar una orden (mueve existencias)
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "Orden"
// @Success      201   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Failure      422   {object}  dto.ErrorResponse  "VALIDATION"
// @Router       /api/sales [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	order, err := h.uc.Commit(c.UserContext(), toOrderInput(in, GetUserID(c)))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// List godoc
// @Summary      Listar órdenes
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        party_id  query  string  false  "Tercero"
// @Param        status    query  string  false  "PENDING | PARTIAL | PAID"
// @Success      200       {object}  dto.OrderListResponse
// @Router       /api/sales [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var in dto.OrderListRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	in.DefaultPage()
	list, err := h.uc.List(c.UserContext(), repository.OrderFilter{
		PartyID: in.PartyID,
		Status:  payment.Status(in.Status),
		Limit:   in.Limit,
		Offset:  in.Offset,
	})
	if err != nil {
		return writeError(c, err)
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, toOrderResponse(o))
	}
	return c.JSON(dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	})
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// RecordPayment godoc
// @Summary      Registrar un abono
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.RecordPaymentRequest  true  "Monto"
// @Success      200   {object}  dto.OrderResponse
// @Router       /api/sales/{id}/payments [post]
func (h *OrderHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	order, err := h.uc.RecordPayment(c.UserContext(), c.Params("id"), in.Amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// PDF godoc
// @Summary      Documento PDF de la orden
// @Tags         orders
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Router       /api/sales/{id}/pdf [get]
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.reports.OrderPDF(c.UserContext(), h.uc.Flow().OrderKind, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}

func toOrderInput(in dto.CreateOrderRequest, userID string) trading.OrderInput {
	out := trading.OrderInput{
		PartyID:    in.PartyID,
		PaidAmount: in.PaidAmount,
		Notes:      in.Notes,
		CreatedBy:  userID,
		Lines:      make([]trading.LineInput, 0, len(in.Lines)),
	}
	if in.Date != nil {
		out.Date = *in.Date
	}
	for _, l := range in.Lines {
		out.Lines = append(out.Lines, trading.LineInput{ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	return out
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	out := dto.OrderResponse{
		ID:            o.ID,
		Kind:          string(o.Kind),
		Number:        o.Number,
		PartyID:       o.PartyID,
		Date:          o.Date,
		TotalQuantity: o.TotalQuantity,
		TotalAmount:   o.TotalAmount,
		PaidAmount:    o.PaidAmount,
		Balance:       o.Balance(),
		PaymentStatus: string(o.PaymentStatus),
		Notes:         o.Notes,
		CreatedBy:     o.CreatedBy,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	for _, l := range o.Lines {
		out.Lines = append(out.Lines, dto.OrderLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}
	return out
}

func toValidationResponse(res *domain.ValidationResult) dto.ValidationResponse {
	return dto.ValidationResponse{
		Valid:             res.Valid(),
		InsufficientStock: res.InsufficientStock(),
		Errors:            res.Errors,
	}
}
