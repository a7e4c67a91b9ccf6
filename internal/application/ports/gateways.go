// Package ports define los gateways hacia el backend de ventas remoto.
// Los casos de uso y el dashboard consumen estas interfaces; la implementación
// HTTP vive en internal/infrastructure/api.
package ports

import (
	"context"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// ClienteGateway acceso al recurso /clientes.
type ClienteGateway interface {
	List(ctx context.Context, s *session.Session) ([]entity.Cliente, error)
	Get(ctx context.Context, s *session.Session, id int64) (*entity.Cliente, error)
	Create(ctx context.Context, s *session.Session, payload dto.ClientePayload) (*entity.Cliente, error)
	Update(ctx context.Context, s *session.Session, id int64, payload dto.ClientePayload) (*entity.Cliente, error)
	Delete(ctx context.Context, s *session.Session, id int64) error
}

// ProductoGateway acceso al recurso /productos.
type ProductoGateway interface {
	List(ctx context.Context, s *session.Session) ([]entity.Producto, error)
	Get(ctx context.Context, s *session.Session, id int64) (*entity.Producto, error)
	Create(ctx context.Context, s *session.Session, payload dto.ProductoPayload) (*entity.Producto, error)
	Update(ctx context.Context, s *session.Session, id int64, payload dto.ProductoPayload) (*entity.Producto, error)
	Delete(ctx context.Context, s *session.Session, id int64) error
}

// PedidoGateway acceso al recurso /pedidos. Los pedidos no se editan: se
// crean y se eliminan.
type PedidoGateway interface {
	List(ctx context.Context, s *session.Session) ([]entity.Pedido, error)
	Get(ctx context.Context, s *session.Session, id int64) (*entity.Pedido, error)
	Create(ctx context.Context, s *session.Session, payload dto.PedidoCreate) (*entity.Pedido, error)
	Delete(ctx context.Context, s *session.Session, id int64) error
}

// FacturaGateway acceso al recurso /facturas.
type FacturaGateway interface {
	List(ctx context.Context, s *session.Session) ([]entity.Factura, error)
	Get(ctx context.Context, s *session.Session, id int64) (*entity.Factura, error)
	Create(ctx context.Context, s *session.Session, payload dto.FacturaCreate) (*entity.Factura, error)
	Delete(ctx context.Context, s *session.Session, id int64) error
}

// AuthGateway acceso al recurso /auth. Register y Login son públicos; Me
// requiere sesión.
type AuthGateway interface {
	Register(ctx context.Context, payload dto.RegistroPayload) (*entity.Perfil, error)
	Login(ctx context.Context, creds dto.Credenciales) (*dto.SesionIniciada, error)
	Me(ctx context.Context, s *session.Session) (*entity.Perfil, error)
}
