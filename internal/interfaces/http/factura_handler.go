package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesmaster/ventas-console/internal/application/usecase"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// FacturaHandler expone la gestión de facturas, incluida la lista de pedidos
// que todavía se pueden facturar.
type FacturaHandler struct {
	uc *usecase.FacturaUseCase
}

func NewFacturaHandler(uc *usecase.FacturaUseCase) *FacturaHandler {
	return &FacturaHandler{uc: uc}
}

func (h *FacturaHandler) List(c *fiber.Ctx) error {
	facturas, err := h.uc.List(c.UserContext(), SesionActual(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(facturas)
}

func (h *FacturaHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	factura, err := h.uc.Get(c.UserContext(), SesionActual(c), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(factura)
}

// PedidosDisponibles lista los pedidos que aún no tienen factura asociada.
func (h *FacturaHandler) PedidosDisponibles(c *fiber.Ctx) error {
	pedidos, err := h.uc.PedidosDisponibles(c.UserContext(), SesionActual(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos)
}

func (h *FacturaHandler) Create(c *fiber.Ctx) error {
	var form validation.FacturaForm
	if err := c.BodyParser(&form); err != nil {
		return cuerpoInvalido(c)
	}

	factura, err := h.uc.Create(c.UserContext(), SesionActual(c), form)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(factura)
}

func (h *FacturaHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	if err := h.uc.Delete(c.UserContext(), SesionActual(c), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
