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

var _ ports.ProductoGateway = (*ProductoGateway)(nil)

// ProductoGateway recurso /productos.
type ProductoGateway struct {
	c *Client
}

// NewProductoGateway construye el gateway.
func NewProductoGateway(c *Client) *ProductoGateway {
	return &ProductoGateway{c: c}
}

func (g *ProductoGateway) List(ctx context.Context, s *session.Session) ([]entity.Producto, error) {
	raw, err := g.c.do(ctx, s, http.MethodGet, "/productos", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Producto](raw), nil
}

func (g *ProductoGateway) Get(ctx context.Context, s *session.Session, id int64) (*entity.Producto, error) {
	raw, err := g.c.do(ctx, s, http.MethodGet, fmt.Sprintf("/productos/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Producto](raw)
}

func (g *ProductoGateway) Create(ctx context.Context, s *session.Session, payload dto.ProductoPayload) (*entity.Producto, error) {
	raw, err := g.c.do(ctx, s, http.MethodPost, "/productos", payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Producto](raw)
}

func (g *ProductoGateway) Update(ctx context.Context, s *session.Session, id int64, payload dto.ProductoPayload) (*entity.Producto, error) {
	raw, err := g.c.do(ctx, s, http.MethodPut, fmt.Sprintf("/productos/%d", id), payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Producto](raw)
}

func (g *ProductoGateway) Delete(ctx context.Context, s *session.Session, id int64) error {
	_, err := g.c.do(ctx, s, http.MethodDelete, fmt.Sprintf("/productos/%d", id), nil)
	return err
}
