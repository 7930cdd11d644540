package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/application/production"
	"github.com/jhoicas/molino-api/internal/domain"
	"github.com/jhoicas/molino-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// ProductionHandler corridas de molienda.
type ProductionHandler struct {
	uc *production.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *production.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// Validate godoc
// @Summary      Validar una corrida sin aplicarla
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "Corrida"
// @Success      200   {object}  dto.ValidationResponse
// @Router       /api/production/validate [post]
func (h *ProductionHandler) Validate(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	res, err := h.uc.Validate(c.UserContext(), toProductionInput(in, GetUserID(c)))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toValidationResponse(res))
}

// Create godoc
// @Summary      Registrar una corrida (consume materia prima, genera producto terminado)
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionRequest  true  "Corrida"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK"
// @Failure      422   {object}  dto.ErrorResponse  "VALIDATION"
// @Router       /api/production [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	rec, err := h.uc.Commit(c.UserContext(), toProductionInput(in, GetUserID(c)))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(h.toResponse(rec))
}

func (h *ProductionHandler) GetByID(c *fiber.Ctx) error {
	rec, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.toResponse(rec))
}

// List godoc
// @Summary      Listar corridas por rango de fechas
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "YYYY-MM-DD (incluido)"
// @Param        to    query  string  false  "YYYY-MM-DD (excluido)"
// @Success      200   {array}  dto.ProductionResponse
// @Router       /api/production [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	var in dto.DateRangeRequest
	if ok, err := parseQuery(c, &in); !ok {
		return err
	}
	from, to, err := parseDateRange(in)
	if err != nil {
		return writeError(c, err)
	}
	in.DefaultPage()
	list, err := h.uc.List(c.UserContext(), from, to, in.Limit, in.Offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ProductionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, h.toResponse(r))
	}
	return c.JSON(out)
}

func (h *ProductionHandler) toResponse(r *entity.ProductionRecord) dto.ProductionResponse {
	return dto.ProductionResponse{
		ID:                r.ID,
		Number:            r.Number,
		Date:              r.Date,
		RawProductID:      r.RawProductID,
		FinishedProductID: r.FinishedProductID,
		InputQuantity:     r.InputQuantity,
		OutputQuantity:    r.OutputQuantity,
		WasteQuantity:     r.WasteQuantity,
		ConversionRate:    r.ConversionRate,
		WastePercent:      r.WastePercent(),
		Efficient:         h.uc.IsEfficient(r),
		MachineID:         r.MachineID,
		OperatorID:        r.OperatorID,
		Notes:             r.Notes,
		CreatedBy:         r.CreatedBy,
		CreatedAt:         r.CreatedAt,
	}
}

func toProductionInput(in dto.CreateProductionRequest, userID string) production.Input {
	out := production.Input{
		RawProductID:      in.RawProductID,
		FinishedProductID: in.FinishedProductID,
		InputQuantity:     in.InputQuantity,
		OutputQuantity:    in.OutputQuantity,
		WasteQuantity:     in.WasteQuantity,
		MachineID:         in.MachineID,
		OperatorID:        in.OperatorID,
		Notes:             in.Notes,
		CreatedBy:         userID,
	}
	if in.Date != nil {
		out.Date = *in.Date
	}
	return out
}

// parseDateRange convierte from/to (YYYY-MM-DD, UTC). Vacío = sin límite.
func parseDateRange(in dto.DateRangeRequest) (from, to time.Time, err error) {
	if in.From != "" {
		if from, err = time.Parse(dateLayout, in.From); err != nil {
			return from, to, domain.ErrInvalidInput
		}
	}
	if in.To != "" {
		if to, err = time.Parse(dateLayout, in.To); err != nil {
			return from, to, domain.ErrInvalidInput
		}
	}
	return from, to, nil
}
