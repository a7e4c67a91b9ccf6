package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/ports"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// FacturaUseCase pantalla de facturas. La creación valida contra los pedidos
// y facturas existentes: la fecha respecto al pedido referenciado y la regla
// de una factura por pedido.
type FacturaUseCase struct {
	facturas ports.FacturaGateway
	pedidos  ports.PedidoGateway
	hoy      func() time.Time
}

// NewFacturaUseCase construye el caso de uso.
func NewFacturaUseCase(facturas ports.FacturaGateway, pedidos ports.PedidoGateway) *FacturaUseCase {
	return &FacturaUseCase{facturas: facturas, pedidos: pedidos, hoy: time.Now}
}

// List devuelve todas las facturas.
func (uc *FacturaUseCase) List(ctx context.Context, s *session.Session) ([]entity.Factura, error) {
	return uc.facturas.List(ctx, s)
}

// Get devuelve una factura por id.
func (uc *FacturaUseCase) Get(ctx context.Context, s *session.Session, id int64) (*entity.Factura, error) {
	return uc.facturas.Get(ctx, s, id)
}

// PedidosDisponibles devuelve los pedidos que aún no tienen factura: la lista
// de selección del formulario. Nunca ofrece un pedido ya facturado.
func (uc *FacturaUseCase) PedidosDisponibles(ctx context.Context, s *session.Session) ([]entity.Pedido, error) {
	pedidos, facturas, err := uc.cargarContexto(ctx, s)
	if err != nil {
		return nil, err
	}
	return validation.PedidosDisponibles(pedidos, facturas), nil
}

// Create valida el formulario contra los pedidos y facturas vigentes, lo
// normaliza y crea la factura. El nro solo viaja si el usuario lo escribió.
func (uc *FacturaUseCase) Create(ctx context.Context, s *session.Session, form validation.FacturaForm) (*entity.Factura, error) {
	pedidos, facturas, err := uc.cargarContexto(ctx, s)
	if err != nil {
		return nil, err
	}

	ctxVal := validation.Contexto{Hoy: uc.hoy(), Pedidos: pedidos, Facturas: facturas}
	if err := errSiInvalido(form.Validar(ctxVal)); err != nil {
		return nil, err
	}

	idPedido, err := strconv.ParseInt(form.IDPedido, 10, 64)
	if err != nil {
		return nil, &ValidationError{Campos: map[string]string{"idPedido": "Select Pedido"}}
	}
	fecha, err := entity.ParseFecha(form.Fecha)
	if err != nil {
		return nil, &ValidationError{Campos: map[string]string{"fecha": "Fecha inválida"}}
	}

	payload := dto.FacturaCreate{
		IDPedido: idPedido,
		Fecha:    entity.NuevaFecha(fecha.Dia()),
		Nro:      strings.TrimSpace(form.Nro),
	}
	return uc.facturas.Create(ctx, s, payload)
}

// Delete elimina la factura.
func (uc *FacturaUseCase) Delete(ctx context.Context, s *session.Session, id int64) error {
	return uc.facturas.Delete(ctx, s, id)
}

// cargarContexto trae pedidos y facturas en paralelo; ambas listas hacen
// falta para las reglas cruzadas del formulario.
func (uc *FacturaUseCase) cargarContexto(ctx context.Context, s *session.Session) ([]entity.Pedido, []entity.Factura, error) {
	type pedidosResult struct {
		pedidos []entity.Pedido
		err     error
	}
	type facturasResult struct {
		facturas []entity.Factura
		err      error
	}

	pedidosCh := make(chan pedidosResult, 1)
	facturasCh := make(chan facturasResult, 1)

	go func() {
		list, err := uc.pedidos.List(ctx, s)
		pedidosCh <- pedidosResult{list, err}
	}()
	go func() {
		list, err := uc.facturas.List(ctx, s)
		facturasCh <- facturasResult{list, err}
	}()

	pedidos := <-pedidosCh
	facturas := <-facturasCh

	if pedidos.err != nil {
		return nil, nil, fmt.Errorf("facturas: pedidos: %w", pedidos.err)
	}
	if facturas.err != nil {
		return nil, nil, fmt.Errorf("facturas: facturas existentes: %w", facturas.err)
	}
	return pedidos.pedidos, facturas.facturas, nil
}
