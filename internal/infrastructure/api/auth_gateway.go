package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/ports"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

var _ ports.AuthGateway = (*AuthGateway)(nil)

// AuthGateway recurso /auth. Normaliza las variantes de respuesta conocidas:
// el token llega como "token" o "accessToken", el perfil anidado bajo "user"
// o aplanado al tope, y todo puede venir envuelto en {"data": ...}.
type AuthGateway struct {
	c *Client
}

// NewAuthGateway construye el gateway.
func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

// authRespuesta superconjunto de las formas de respuesta de /auth.
type authRespuesta struct {
	Token       string          `json:"token"`
	AccessToken string          `json:"accessToken"`
	User        *entity.Perfil  `json:"user"`
	Data        json.RawMessage `json:"data"`

	// Perfil aplanado al tope (backends que devuelven todo junto).
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Role      string `json:"role"`
}

// perfil arma el perfil desde la forma anidada o la aplanada.
func (r authRespuesta) perfil() entity.Perfil {
	if r.User != nil {
		return *r.User
	}
	return entity.Perfil{
		UserID:    r.UserID,
		Email:     r.Email,
		Firstname: r.Firstname,
		Lastname:  r.Lastname,
		Role:      r.Role,
	}
}

// parseAuth deserializa la respuesta, desenvolviendo {"data": {...}} si el
// nivel superior no trae nada útil.
func parseAuth(raw []byte) (authRespuesta, error) {
	var r authRespuesta
	if err := json.Unmarshal(raw, &r); err != nil {
		return r, fmt.Errorf("api: deserializar respuesta de auth: %w", err)
	}
	if r.Token == "" && r.AccessToken == "" && r.User == nil && r.Email == "" && len(r.Data) > 0 && r.Data[0] == '{' {
		if err := json.Unmarshal(r.Data, &r); err != nil {
			return r, fmt.Errorf("api: deserializar respuesta de auth: %w", err)
		}
	}
	return r, nil
}

// Register da de alta un usuario y devuelve su perfil.
func (g *AuthGateway) Register(ctx context.Context, payload dto.RegistroPayload) (*entity.Perfil, error) {
	raw, err := g.c.do(ctx, nil, http.MethodPost, "/auth/register", payload)
	if err != nil {
		return nil, err
	}
	r, err := parseAuth(raw)
	if err != nil {
		return nil, err
	}
	perfil := r.perfil()
	return &perfil, nil
}

// Login abre sesión y devuelve token + perfil normalizados. Una respuesta 2xx
// sin token en ninguna de sus formas es un error.
func (g *AuthGateway) Login(ctx context.Context, creds dto.Credenciales) (*dto.SesionIniciada, error) {
	raw, err := g.c.do(ctx, nil, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, err
	}
	r, err := parseAuth(raw)
	if err != nil {
		return nil, err
	}

	token := r.Token
	if token == "" {
		token = r.AccessToken
	}
	if token == "" {
		return nil, fmt.Errorf("api: login: %w", domain.ErrTokenAusente)
	}

	return &dto.SesionIniciada{Token: token, User: r.perfil()}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (g *AuthGateway) Me(ctx context.Context, s *session.Session) (*entity.Perfil, error) {
	raw, err := g.c.do(ctx, s, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}
	r, err := parseAuth(raw)
	if err != nil {
		return nil, err
	}
	perfil := r.perfil()
	return &perfil, nil
}
