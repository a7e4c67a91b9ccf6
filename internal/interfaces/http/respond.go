package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/usecase"
	"github.com/salesmaster/ventas-console/internal/domain"
	"github.com/salesmaster/ventas-console/internal/infrastructure/api"
)

// responderError traduce los errores de los casos de uso a respuestas HTTP
// homogéneas. El orden importa: los errores de validación y de sesión tienen
// prioridad sobre el error genérico del backend.
func responderError(c *fiber.Ctx, err error) error {
	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    dto.CodeValidation,
			Message: "Los datos enviados no son válidos",
			Fields:  vErr.Campos,
		})
	}

	if errors.Is(err, domain.ErrSesionExpirada) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    dto.CodeSessionExpired,
			Message: "Tu sesión ha expirado. Por favor, inicia sesión nuevamente.",
		})
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		code := dto.CodeUpstream
		if apiErr.Status == fiber.StatusNotFound {
			code = dto.CodeNotFound
		}
		return c.Status(apiErr.Status).JSON(dto.ErrorResponse{
			Code:    code,
			Message: apiErr.Message,
		})
	}

	if errors.Is(err, domain.ErrConexion) {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code:    dto.CodeUnreachable,
			Message: "No se pudo conectar con el servidor. Verifica que el backend esté corriendo.",
		})
	}

	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code:    dto.CodeNotFound,
			Message: "El recurso solicitado no existe",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "Error interno del servidor",
	})
}

// parseID lee el parámetro de ruta "id" como entero positivo.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func idInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    dto.CodeInvalidBody,
		Message: "El identificador debe ser un número entero positivo",
	})
}

func cuerpoInvalido(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    dto.CodeInvalidBody,
		Message: "El cuerpo de la petición no es un JSON válido",
	})
}
