package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/application/usecase"
)

// PartyHandler proveedores y clientes.
type PartyHandler struct {
	uc *usecase.PartyUseCase
}

// NewPartyHandler construye el handler.
func NewPartyHandler(uc *usecase.PartyUseCase) *PartyHandler {
	return &PartyHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor o cliente
// @Tags         parties
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePartyRequest  true  "Datos del tercero"
// @Success      201   {object}  dto.PartyResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/parties [post]
func (h *PartyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePartyRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PartyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "tercero")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar terceros
// @Tags         parties
// @Security     Bearer
// @Produce      json
// @Param        kind    query  string  false  "SUPPLIER | CUSTOMER"
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.PartyListResponse
// @Router       /api/parties [get]
func (h *PartyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if ok, err := parseQuery(c, &page); !ok {
		return err
	}
	out, err := h.uc.List(c.UserContext(), c.Query("kind"), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func (h *PartyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePartyRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "tercero")
	}
	return c.JSON(out)
}

func (h *PartyHandler) Activate(c *fiber.Ctx) error   { return h.setActive(c, true) }
func (h *PartyHandler) Deactivate(c *fiber.Ctx) error { return h.setActive(c, false) }

func (h *PartyHandler) setActive(c *fiber.Ctx, active bool) error {
	out, err := h.uc.SetActive(c.UserContext(), c.Params("id"), active)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "tercero")
	}
	return c.JSON(out)
}
