package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesmaster/ventas-console/internal/application/usecase"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// PedidoHandler expone la gestión de pedidos y la cotización en línea que la
// consola usa para mostrar subtotales mientras se arma el pedido.
type PedidoHandler struct {
	uc *usecase.PedidoUseCase
}

func NewPedidoHandler(uc *usecase.PedidoUseCase) *PedidoHandler {
	return &PedidoHandler{uc: uc}
}

func (h *PedidoHandler) List(c *fiber.Ctx) error {
	pedidos, err := h.uc.List(c.UserContext(), SesionActual(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedidos)
}

func (h *PedidoHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	pedido, err := h.uc.Get(c.UserContext(), SesionActual(c), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(pedido)
}

func (h *PedidoHandler) Create(c *fiber.Ctx) error {
	var form validation.PedidoForm
	if err := c.BodyParser(&form); err != nil {
		return cuerpoInvalido(c)
	}

	pedido, err := h.uc.Create(c.UserContext(), SesionActual(c), form)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pedido)
}

func (h *PedidoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	if err := h.uc.Delete(c.UserContext(), SesionActual(c), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type cotizacionRequest struct {
	Productos []validation.LineaForm `json:"productos"`
}

// Cotizar calcula subtotales y total estimado para las líneas recibidas sin
// crear el pedido.
func (h *PedidoHandler) Cotizar(c *fiber.Ctx) error {
	var req cotizacionRequest
	if err := c.BodyParser(&req); err != nil {
		return cuerpoInvalido(c)
	}

	cotizacion, err := h.uc.Cotizar(c.UserContext(), SesionActual(c), req.Productos)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cotizacion)
}
