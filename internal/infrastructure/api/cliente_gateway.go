package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/ports"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// Verificar en tiempo de compilación que ClienteGateway implementa el puerto.
var _ ports.ClienteGateway = (*ClienteGateway)(nil)

// ClienteGateway recurso /clientes.
type ClienteGateway struct {
	c *Client
}

// NewClienteGateway construye el gateway.
func NewClienteGateway(c *Client) *ClienteGateway {
	return &ClienteGateway{c: c}
}

func (g *ClienteGateway) List(ctx context.Context, s *session.Session) ([]entity.Cliente, error) {
	raw, err := g.c.do(ctx, s, http.MethodGet, "/clientes", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Cliente](raw), nil
}

func (g *ClienteGateway) Get(ctx context.Context, s *session.Session, id int64) (*entity.Cliente, error) {
	raw, err := g.c.do(ctx, s, http.MethodGet, fmt.Sprintf("/clientes/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Cliente](raw)
}

func (g *ClienteGateway) Create(ctx context.Context, s *session.Session, payload dto.ClientePayload) (*entity.Cliente, error) {
	raw, err := g.c.do(ctx, s, http.MethodPost, "/clientes", payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Cliente](raw)
}

func (g *ClienteGateway) Update(ctx context.Context, s *session.Session, id int64, payload dto.ClientePayload) (*entity.Cliente, error) {
	raw, err := g.c.do(ctx, s, http.MethodPut, fmt.Sprintf("/clientes/%d", id), payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Cliente](raw)
}

func (g *ClienteGateway) Delete(ctx context.Context, s *session.Session, id int64) error {
	_, err := g.c.do(ctx, s, http.MethodDelete, fmt.Sprintf("/clientes/%d", id), nil)
	return err
}
