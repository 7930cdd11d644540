package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/molino-api/internal/application/dto"
	"github.com/jhoicas/molino-api/internal/application/usecase"
)

// AssetHandler máquinas y personal del molino.
type AssetHandler struct {
	uc *usecase.AssetUseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *usecase.AssetUseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

func (h *AssetHandler) CreateMachine(c *fiber.Ctx) error {
	var in dto.CreateMachineRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateMachine(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AssetHandler) GetMachine(c *fiber.Ctx) error {
	out, err := h.uc.GetMachine(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "máquina")
	}
	return c.JSON(out)
}

func (h *AssetHandler) ListMachines(c *fiber.Ctx) error {
	var page dto.PageRequest
	if ok, err := parseQuery(c, &page); !ok {
		return err
	}
	out, err := h.uc.ListMachines(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *AssetHandler) DeactivateMachine(c *fiber.Ctx) error {
	out, err := h.uc.DeactivateMachine(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "máquina")
	}
	return c.JSON(out)
}

func (h *AssetHandler) CreateStaff(c *fiber.Ctx) error {
	var in dto.CreateStaffRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateStaff(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *AssetHandler) GetStaff(c *fiber.Ctx) error {
	out, err := h.uc.GetStaff(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "operario")
	}
	return c.JSON(out)
}

func (h *AssetHandler) ListStaff(c *fiber.Ctx) error {
	var page dto.PageRequest
	if ok, err := parseQuery(c, &page); !ok {
		return err
	}
	out, err := h.uc.ListStaff(c.UserContext(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"items": out})
}

func (h *AssetHandler) DeactivateStaff(c *fiber.Ctx) error {
	out, err := h.uc.DeactivateStaff(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "operario")
	}
	return c.JSON(out)
}
