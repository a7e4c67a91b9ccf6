package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesmaster/ventas-console/internal/application/usecase"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// ProductoHandler expone el CRUD de productos contra el backend de ventas.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

func (h *ProductoHandler) List(c *fiber.Ctx) error {
	productos, err := h.uc.List(c.UserContext(), SesionActual(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(productos)
}

func (h *ProductoHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	producto, err := h.uc.Get(c.UserContext(), SesionActual(c), id)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}

func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var form validation.ProductoForm
	if err := c.BodyParser(&form); err != nil {
		return cuerpoInvalido(c)
	}

	producto, err := h.uc.Create(c.UserContext(), SesionActual(c), form)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(producto)
}

func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	var form validation.ProductoForm
	if err := c.BodyParser(&form); err != nil {
		return cuerpoInvalido(c)
	}

	producto, err := h.uc.Update(c.UserContext(), SesionActual(c), id, form)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(producto)
}

func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return idInvalido(c)
	}

	if err := h.uc.Delete(c.UserContext(), SesionActual(c), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
