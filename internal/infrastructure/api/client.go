// Package api implementa los gateways HTTP contra el backend de ventas.
// Un único cliente base arma las peticiones (bearer de la sesión, request id,
// timeouts, cancelación por context) y clasifica las fallas; cada gateway de
// recurso solo conoce sus rutas y sus tipos.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain"
	"github.com/salesmaster/ventas-console/pkg/config"
	"github.com/salesmaster/ventas-console/pkg/logger"
)

// maxBodyBytes tope de lectura del cuerpo de respuesta.
const maxBodyBytes = 4 * 1024 * 1024

// Client cliente base hacia el backend de ventas.
type Client struct {
	baseURL string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente base.
func NewClient(cfg config.APIConfig, log *logger.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout()},
		log:     log,
	}
}

// do ejecuta una petición JSON y devuelve el cuerpo crudo de una respuesta 2xx.
//
// Clasificación de fallas:
//   - red sin respuesta        -> domain.ErrConexion (envuelto)
//   - context cancelado/timeout-> el error del context
//   - 4xx/5xx                  -> *APIError (un 401 además desenvuelve a
//     domain.ErrSesionExpirada, lo que fuerza el cierre de sesión global)
func (c *Client) do(ctx context.Context, s *session.Session, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("api: serializar request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("api: crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if s != nil && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("api: %s %s cancelada: %w", method, path, ctx.Err())
		}
		c.log.Warn().Str("request_id", requestID).Str("method", method).Str("path", path).Err(err).
			Msg("backend inalcanzable")
		return nil, fmt.Errorf("api: %s %s: %w", method, path, domain.ErrConexion)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("api: leer respuesta de %s %s: %w", method, path, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := newAPIError(resp.StatusCode, raw)
		c.log.Debug().Str("request_id", requestID).Str("method", method).Str("path", path).
			Int("status", resp.StatusCode).Str("mensaje", apiErr.Message).
			Msg("backend rechazó la petición")
		return nil, apiErr
	}

	return raw, nil
}
