package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesmaster/ventas-console/internal/application/dashboard"
)

// DashboardHandler expone el resumen agregado que alimenta la pantalla
// principal de la consola.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Resumen(c *fiber.Ctx) error {
	resumen, err := h.uc.Resumen(c.UserContext(), SesionActual(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(resumen)
}
