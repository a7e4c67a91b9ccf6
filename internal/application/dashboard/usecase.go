package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/ports"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// UseCase carga las cuatro colecciones y computa el resumen del panel.
type UseCase struct {
	clientes  ports.ClienteGateway
	productos ports.ProductoGateway
	pedidos   ports.PedidoGateway
	facturas  ports.FacturaGateway
	ahora     func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	clientes ports.ClienteGateway,
	productos ports.ProductoGateway,
	pedidos ports.PedidoGateway,
	facturas ports.FacturaGateway,
) *UseCase {
	return &UseCase{
		clientes:  clientes,
		productos: productos,
		pedidos:   pedidos,
		facturas:  facturas,
		ahora:     time.Now,
	}
}

// Resumen lanza las cuatro consultas de listado en paralelo, espera todas y
// computa las métricas. Si cualquiera falla, falla la carga completa del
// dashboard: no hay render parcial.
func (uc *UseCase) Resumen(ctx context.Context, s *session.Session) (*dto.ResumenDTO, error) {
	type clientesResult struct {
		clientes []entity.Cliente
		err      error
	}
	type productosResult struct {
		productos []entity.Producto
		err       error
	}
	type pedidosResult struct {
		pedidos []entity.Pedido
		err     error
	}
	type facturasResult struct {
		facturas []entity.Factura
		err      error
	}

	clientesCh := make(chan clientesResult, 1)
	productosCh := make(chan productosResult, 1)
	pedidosCh := make(chan pedidosResult, 1)
	facturasCh := make(chan facturasResult, 1)

	go func() {
		list, err := uc.clientes.List(ctx, s)
		clientesCh <- clientesResult{list, err}
	}()
	go func() {
		list, err := uc.productos.List(ctx, s)
		productosCh <- productosResult{list, err}
	}()
	go func() {
		list, err := uc.pedidos.List(ctx, s)
		pedidosCh <- pedidosResult{list, err}
	}()
	go func() {
		list, err := uc.facturas.List(ctx, s)
		facturasCh <- facturasResult{list, err}
	}()

	clientes := <-clientesCh
	productos := <-productosCh
	pedidos := <-pedidosCh
	facturas := <-facturasCh

	if clientes.err != nil {
		return nil, fmt.Errorf("dashboard: clientes: %w", clientes.err)
	}
	if productos.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", productos.err)
	}
	if pedidos.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos: %w", pedidos.err)
	}
	if facturas.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", facturas.err)
	}

	resumen := CalcularResumen(
		clientes.clientes,
		productos.productos,
		pedidos.pedidos,
		facturas.facturas,
		uc.ahora(),
	)
	return &resumen, nil
}
