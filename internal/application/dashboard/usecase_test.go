package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesmaster/ventas-console/internal/application/dashboard"
	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Gateways falsos: solo List importa para el dashboard.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientes struct {
	lista []entity.Cliente
	err   error
}

func (f *fakeClientes) List(context.Context, *session.Session) ([]entity.Cliente, error) {
	return f.lista, f.err
}
func (f *fakeClientes) Get(context.Context, *session.Session, int64) (*entity.Cliente, error) {
	return nil, nil
}
func (f *fakeClientes) Create(context.Context, *session.Session, dto.ClientePayload) (*entity.Cliente, error) {
	return nil, nil
}
func (f *fakeClientes) Update(context.Context, *session.Session, int64, dto.ClientePayload) (*entity.Cliente, error) {
	return nil, nil
}
func (f *fakeClientes) Delete(context.Context, *session.Session, int64) error { return nil }

type fakeProductos struct {
	lista []entity.Producto
	err   error
}

func (f *fakeProductos) List(context.Context, *session.Session) ([]entity.Producto, error) {
	return f.lista, f.err
}
func (f *fakeProductos) Get(context.Context, *session.Session, int64) (*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductos) Create(context.Context, *session.Session, dto.ProductoPayload) (*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductos) Update(context.Context, *session.Session, int64, dto.ProductoPayload) (*entity.Producto, error) {
	return nil, nil
}
func (f *fakeProductos) Delete(context.Context, *session.Session, int64) error { return nil }

type fakePedidos struct {
	lista []entity.Pedido
	err   error
}

func (f *fakePedidos) List(context.Context, *session.Session) ([]entity.Pedido, error) {
	return f.lista, f.err
}
func (f *fakePedidos) Get(context.Context, *session.Session, int64) (*entity.Pedido, error) {
	return nil, nil
}
func (f *fakePedidos) Create(context.Context, *session.Session, dto.PedidoCreate) (*entity.Pedido, error) {
	return nil, nil
}
func (f *fakePedidos) Delete(context.Context, *session.Session, int64) error { return nil }

type fakeFacturas struct {
	lista []entity.Factura
	err   error
}

func (f *fakeFacturas) List(context.Context, *session.Session) ([]entity.Factura, error) {
	return f.lista, f.err
}
func (f *fakeFacturas) Get(context.Context, *session.Session, int64) (*entity.Factura, error) {
	return nil, nil
}
func (f *fakeFacturas) Create(context.Context, *session.Session, dto.FacturaCreate) (*entity.Factura, error) {
	return nil, nil
}
func (f *fakeFacturas) Delete(context.Context, *session.Session, int64) error { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Resumen
// ──────────────────────────────────────────────────────────────────────────────

func TestUseCase_Resumen(t *testing.T) {
	uc := dashboard.NewUseCase(
		&fakeClientes{lista: []entity.Cliente{{IDCliente: 1, Nombre: "Ana"}}},
		&fakeProductos{lista: []entity.Producto{{IDProd: 1, Nombre: "Café"}}},
		&fakePedidos{lista: []entity.Pedido{{IDPedido: 1, IDCliente: 1}}},
		&fakeFacturas{},
	)

	resumen, err := uc.Resumen(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 1, resumen.Conteos.Clientes)
	assert.Equal(t, 1, resumen.Conteos.Productos)
	assert.Equal(t, 1, resumen.Conteos.Pedidos)
	assert.Equal(t, 0, resumen.Conteos.Facturas)
	require.Len(t, resumen.TopClientes, 1)
	assert.Equal(t, "Ana", resumen.TopClientes[0].Nombre)
}

func TestUseCase_Resumen_FallaCompleta(t *testing.T) {
	// Si cualquiera de las cuatro consultas falla, no hay resumen parcial.
	falla := errors.New("backend caído")

	uc := dashboard.NewUseCase(
		&fakeClientes{},
		&fakeProductos{err: falla},
		&fakePedidos{},
		&fakeFacturas{},
	)

	resumen, err := uc.Resumen(context.Background(), nil)

	assert.Nil(t, resumen)
	require.ErrorIs(t, err, falla)
	assert.Contains(t, err.Error(), "productos", "el error identifica la colección que falló")
}
