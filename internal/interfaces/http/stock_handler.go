package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/application/ledger"
)

// StockHandler libro de existencias: consulta, inicialización, niveles y ajustes manuales.
type StockHandler struct {
	svc *ledger.Service
}

// NewStockHandler construye el handler.
func NewStockHandler(svc *ledger.Service) *StockHandler {
	return &StockHandler{svc: svc}
}

// List godoc
// @Summary      Existencias de todos los productos con su estado
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockResponse
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	views, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockResponses(views))
}

// Get godoc
// @Summary      Existencias de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{product_id} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	view, err := h.svc.View(c.UserContext(), c.Params("product_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockResponse(*view))
}

// Initialize godoc
// @Summary      Inicializar existencias de un producto
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InitializeStockRequest  true  "Cantidad inicial y niveles"
// @Success      201   {object}  dto.StockResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Initialize(c *fiber.Ctx) error {
	var in dto.InitializeStockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	view, err := h.svc.Initialize(c.UserContext(), in.ProductID, in.Quantity, in.MinLevel, in.MaxLevel)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toStockResponse(*view))
}

// SetThresholds godoc
// @Summary      Definir niveles mínimo y máximo
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body  body  dto.SetThresholdsRequest  true  "Niveles (max_level 0 = sin tope)"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/{product_id}/thresholds [put]
func (h *StockHandler) SetThresholds(c *fiber.Ctx) error {
	var in dto.SetThresholdsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	view, err := h.svc.SetThresholds(c.UserContext(), c.Params("product_id"), in.MinLevel, in.MaxLevel)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toStockResponse(*view))
}

// Adjust godoc
// @Summary      Ajuste manual de existencias (conteo físico, merma)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        product_id  path  string  true  "ID del producto"
// @Param        body  body  dto.AdjustStockRequest  true  "Delta y motivo"
// @Success      200   {object}  dto.StockResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/{product_id}/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	productID := c.Params("product_id")
	view, err := h.svc.Adjust(c.UserContext(), productID, in.Delta)
	if err != nil {
		return writeError(c, err)
	}
	log.Info().
		Str("product_id", productID).
		Str("delta", in.Delta.String()).
		Str("reason", in.Reason).
		Str("user_id", GetUserID(c)).
		Msg("ajuste manual de existencias")
	return c.JSON(toStockResponse(*view))
}

func toStockResponse(v ledger.StockView) dto.StockResponse {
	return dto.StockResponse{
		ProductID:   v.ProductID,
		ProductCode: v.ProductCode,
		ProductName: v.ProductName,
		ProductType: string(v.ProductType),
		Active:      v.Active,
		Quantity:    v.Quantity,
		MinLevel:    v.MinLevel,
		MaxLevel:    v.MaxLevel,
		Status:      string(v.Status),
		UpdatedAt:   v.UpdatedAt,
	}
}

func toStockResponses(views []ledger.StockView) []dto.StockResponse {
	out := make([]dto.StockResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toStockResponse(v))
	}
	return out
}
