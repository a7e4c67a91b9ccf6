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

var _ ports.FacturaGateway = (*FacturaGateway)(nil)

// FacturaGateway recurso /facturas.
type FacturaGateway struct {
	c *Client
}

// NewFacturaGateway construye el gateway.
func NewFacturaGateway(c *Client) *FacturaGateway {
	return &FacturaGateway{c: c}
}

func (g *FacturaGateway) List(ctx context.Context, s *session.Session) ([]entity.Factura, error) {
	raw, err := g.c.do(ctx, s, http.MethodGet, "/facturas", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[entity.Factura](raw), nil
}

func (g *FacturaGateway) Get(ctx context.Context, s *session.Session, id int64) (*entity.Factura, error) {
	raw, err := g.c.do(ctx, s, http.MethodGet, fmt.Sprintf("/facturas/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Factura](raw)
}

func (g *FacturaGateway) Create(ctx context.Context, s *session.Session, payload dto.FacturaCreate) (*entity.Factura, error) {
	raw, err := g.c.do(ctx, s, http.MethodPost, "/facturas", payload)
	if err != nil {
		return nil, err
	}
	return decodeOne[entity.Factura](raw)
}

func (g *FacturaGateway) Delete(ctx context.Context, s *session.Session, id int64) error {
	_, err := g.c.do(ctx, s, http.MethodDelete, fmt.Sprintf("/facturas/%d", id), nil)
	return err
}
