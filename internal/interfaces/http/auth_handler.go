package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesmaster/ventas-console/internal/application/auth"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// AuthHandler expone el registro, el inicio de sesión y el perfil del usuario
// autenticado. El registro y el login son rutas públicas.
type AuthHandler struct {
	uc *auth.UseCase
}

func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var form validation.RegistroForm
	if err := c.BodyParser(&form); err != nil {
		return cuerpoInvalido(c)
	}

	perfil, err := h.uc.Register(c.UserContext(), form)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(perfil)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form validation.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return cuerpoInvalido(c)
	}

	sesion, err := h.uc.Login(c.UserContext(), form)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(sesion)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	perfil, err := h.uc.Me(c.UserContext(), SesionActual(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(perfil)
}
