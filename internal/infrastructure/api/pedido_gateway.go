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

var _ ports.PedidoGateway = (*PedidoGateway)(nil)

// PedidoGateway recurso /pedidos.
type PedidoGateway struct {
	c *Client
}

// NewPedidoGateway construye el gateway.
func NewPedidoGateway(c *Client) *PedidoGateway {
	return &PedidoGateway{c: c}
}

func (g *PedidoGateway) List(ctx context.Context, s *session.Session) ([]entity.Pedido, error) {
	raw, err := g.c.do(ctx, s, http.MethodGet, "/pedidos", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Pedido](raw), nil
}

func (g *PedidoGateway) Get(ctx context.Context, s *session.Session, id int64) (*entity.Pedido, error) {
	raw, err := g.c.do(ctx, s, http.MethodGet, fmt.Sprintf("/pedidos/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Pedido](raw)
}

func (g *PedidoGateway) Create(ctx context.Context, s *session.Session, payload dto.PedidoCreate) (*entity.Pedido, error) {
	raw, err := g.c.do(ctx, s, http.MethodPost, "/pedidos", payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Pedido](raw)
}

func (g *PedidoGateway) Delete(ctx context.Context, s *session.Session, id int64) error {
	_, err := g.c.do(ctx, s, http.MethodDelete, fmt.Sprintf("/pedidos/%d", id), nil)
	return err
}
