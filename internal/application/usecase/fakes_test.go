package usecase_test

import (
	"context"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gateways falsos: cada campo de función cubre una operación; las no usadas
// quedan en nil y el test revienta si el caso de uso las toca.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteGW struct {
	list   func() ([]entity.Cliente, error)
	create func(p dto.ClientePayload) (*entity.Cliente, error)
	update func(id int64, p dto.ClientePayload) (*entity.Cliente, error)
}

func (f *fakeClienteGW) List(context.Context, *session.Session) ([]entity.Cliente, error) {
	return f.list()
}
func (f *fakeClienteGW) Get(context.Context, *session.Session, int64) (*entity.Cliente, error) {
	return nil, nil
}
func (f *fakeClienteGW) Create(_ context.Context, _ *session.Session, p dto.ClientePayload) (*entity.Cliente, error) {
	return f.create(p)
}
func (f *fakeClienteGW) Update(_ context.Context, _ *session.Session, id int64, p dto.ClientePayload) (*entity.Cliente, error) {
	return f.update(id, p)
}
func (f *fakeClienteGW) Delete(context.Context, *session.Session, int64) error { return nil }

type fakeProductoGW struct {
	list   func() ([]entity.Producto, error)
	create func(p dto.ProductoPayload) (*entity.Producto, error)
}

func (f *fakeProductoGW) List(context.Context, *session.Session) ([]entity.Producto, error) {
	return f.list()
}
func (f *fakeProductoGW) Get(context.Context, *session.Session, int64) (*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductoGW) Create(_ context.Context, _ *session.Session, p dto.ProductoPayload) (*entity.Producto, error) {
	return f.create(p)
}
func (f *fakeProductoGW) Update(context.Context, *session.Session, int64, dto.ProductoPayload) (*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductoGW) Delete(context.Context, *session.Session, int64) error { return nil }

type fakePedidoGW struct {
	list   func() ([]entity.Pedido, error)
	create func(p dto.PedidoCreate) (*entity.Pedido, error)
}

func (f *fakePedidoGW) List(context.Context, *session.Session) ([]entity.Pedido, error) {
	return f.list()
}
func (f *fakePedidoGW) Get(context.Context, *session.Session, int64) (*entity.Pedido, error) {
	return nil, nil
}
func (f *fakePedidoGW) Create(_ context.Context, _ *session.Session, p dto.PedidoCreate) (*entity.Pedido, error) {
	return f.create(p)
}
func (f *fakePedidoGW) Delete(context.Context, *session.Session, int64) error { return nil }

type fakeFacturaGW struct {
	list   func() ([]entity.Factura, error)
	create func(p dto.FacturaCreate) (*entity.Factura, error)
}

func (f *fakeFacturaGW) List(context.Context, *session.Session) ([]entity.Factura, error) {
	return f.list()
}
func (f *fakeFacturaGW) Get(context.Context, *session.Session, int64) (*entity.Factura, error) {
	return nil, nil
}
func (f *fakeFacturaGW) Create(_ context.Context, _ *session.Session, p dto.FacturaCreate) (*entity.Factura, error) {
	return f.create(p)
}
func (f *fakeFacturaGW) Delete(context.Context, *session.Session, int64) error { return nil }
