package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesmaster/ventas-console/internal/application/usecase"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// ClienteHandler expone el CRUD de clientes contra el backend de ventas.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

func (h *ClienteHandler) List(c *fiber.Ctx) error {
	clientes, err := h.uc.List(c.UserContext(), SesionActual(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(clientes)
}

func (h *ClienteHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	cliente, err := h.uc.Get(c.UserContext(), SesionActual(c), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cliente)
}

func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var form validation.ClienteForm
	if err := c.BodyParser(&form); err != nil {
		return cuerpoInvalido(c)
	}

	cliente, err := h.uc.Create(c.UserContext(), SesionActual(c), form)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	var form validation.ClienteForm
	if err := c.BodyParser(&form); err != nil {
		return cuerpoInvalido(c)
	}

	cliente, err := h.uc.Update(c.UserContext(), SesionActual(c), id, form)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(cliente)
}

func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	if err := h.uc.Delete(c.UserContext(), SesionActual(c), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
