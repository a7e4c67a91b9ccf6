package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/salesmaster/ventas-console/internal/domain"
)

// APIError respuesta de error del backend de ventas (4xx/5xx).
// Message sale del cuerpo si el backend mandó algo legible; si no, del
// mensaje genérico por código de estado.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

// Unwrap expone los sentinelas de dominio: errors.Is(err, domain.ErrSesionExpirada)
// funciona para cualquier 401 del backend, venga de la pantalla que venga.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return domain.ErrSesionExpirada
	case http.StatusNotFound:
		return domain.ErrNotFound
	default:
		return nil
	}
}

func newAPIError(status int, raw []byte) *APIError {
	return &APIError{Status: status, Message: mensajeDeCuerpo(status, raw)}
}

// mensajeDeCuerpo extrae el mensaje de error probando las formas de cuerpo
// conocidas, en orden: message, data como string, data.message, error.
// Si ninguna aplica cae al mensaje genérico del código de estado.
func mensajeDeCuerpo(status int, raw []byte) string {
	var cuerpo struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if json.Unmarshal(raw, &cuerpo) == nil {
		if cuerpo.Message != "" {
			return cuerpo.Message
		}
		if len(cuerpo.Data) > 0 {
			var texto string
			if json.Unmarshal(cuerpo.Data, &texto) == nil && texto != "" {
				return texto
			}
			var anidado struct {
				Message string `json:"message"`
			}
			if json.Unmarshal(cuerpo.Data, &anidado) == nil && anidado.Message != "" {
				return anidado.Message
			}
		}
		if cuerpo.Error != "" {
			return cuerpo.Error
		}
	}

	switch status {
	case http.StatusUnauthorized:
		return "Credenciales incorrectas. Verifica tu email y contraseña."
	case http.StatusForbidden:
		return "Acceso denegado. Verifica tus credenciales o contacta al administrador."
	case http.StatusNotFound:
		return "El endpoint no fue encontrado. Verifica que el backend esté corriendo."
	default:
		return fmt.Sprintf("Error del servidor (%d)", status)
	}
}
