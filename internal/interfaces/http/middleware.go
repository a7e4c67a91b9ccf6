package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/pkg/logger"
)

const (
	localSession   = "session"
	localRequestID = "request_id"

	headerRequestID = "X-Request-ID"
)

// RequestIDMiddleware asigna un identificador único a cada petición y lo
// propaga en la respuesta. Si el cliente ya envía uno, se respeta.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(localRequestID, id)
		c.Set(headerRequestID, id)
		return c.Next()
	}
}

// LoggingMiddleware registra cada petición HTTP con su duración y estado.
func LoggingMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		err := c.Next()

		reqID, _ := c.Locals(localRequestID).(string)
		evento := log.WithRequestID(reqID).Info()
		if err != nil || c.Response().StatusCode() >= 500 {
			evento = log.WithRequestID(reqID).Error().Err(err)
		}
		evento.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(inicio)).
			Msg("http request")
		return err
	}
}

// SessionMiddleware exige un token Bearer y deja la sesión construida en el
// contexto de la petición. No verifica la firma: eso lo hace el backend; aquí
// solo se corta de inmediato cuando el token ya expiró.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    dto.CodeUnauthorized,
				Message: "Se requiere el encabezado Authorization",
			})
		}

		partes := strings.SplitN(authHeader, " ", 2)
		if len(partes) != 2 || !strings.EqualFold(partes[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    dto.CodeUnauthorized,
				Message: "Formato de autorización inválido. Use: Bearer <token>",
			})
		}

		s, err := session.FromToken(partes[1], time.Now())
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    dto.CodeSessionExpired,
				Message: "Tu sesión ha expirado. Por favor, inicia sesión nuevamente.",
			})
		}

		c.Locals(localSession, s)
		return c.Next()
	}
}

// SesionActual recupera la sesión dejada por SessionMiddleware. Devuelve nil
// en rutas públicas.
func SesionActual(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(localSession).(*session.Session)
	return s
}
