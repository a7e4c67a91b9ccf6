// Package session modela la sesión autenticada como un valor explícito que se
// construye por petición y se pasa hacia abajo, en lugar del contexto global
// mutable de la consola original.
package session

import (
	"fmt"
	"time"

	"github.com/salesmaster/ventas-console/internal/domain"
	"github.com/salesmaster/ventas-console/pkg/token"
)

// Session credencial de la petición en curso contra el backend de ventas.
// Claims es best-effort: queda nil si el token es opaco.
type Session struct {
	Token  string
	Claims *token.Claims
}

// FromToken construye la sesión a partir del bearer token del navegador.
// Si el token trae exp y ya venció, corta con ErrSesionExpirada sin gastar
// una vuelta de red contra el backend.
func FromToken(bearer string, now time.Time) (*Session, error) {
	if bearer == "" {
		return nil, fmt.Errorf("session: %w", domain.ErrSesionExpirada)
	}
	if token.Expired(bearer, now) {
		return nil, fmt.Errorf("session: token vencido: %w", domain.ErrSesionExpirada)
	}
	claims, err := token.Inspect(bearer)
	if err != nil {
		// Token opaco: el backend decide. La sesión sigue siendo utilizable.
		claims = nil
	}
	return &Session{Token: bearer, Claims: claims}, nil
}

// Email devuelve el email de los claims, si se pudo decodificar.
func (s *Session) Email() string {
	if s == nil || s.Claims == nil {
		return ""
	}
	return s.Claims.Email
}

// Role devuelve el rol de los claims, si se pudo decodificar.
func (s *Session) Role() string {
	if s == nil || s.Claims == nil {
		return ""
	}
	return s.Claims.Role
}
