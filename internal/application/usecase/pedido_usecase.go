package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/ports"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
	"github.com/salesmaster/ventas-console/internal/domain/pricing"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// PedidoUseCase pantalla de pedidos: listado, creación con validación y el
// total en vivo que la consola muestra mientras se arma el pedido.
type PedidoUseCase struct {
	pedidos   ports.PedidoGateway
	productos ports.ProductoGateway
	hoy       func() time.Time
}

// NewPedidoUseCase construye el caso de uso.
func NewPedidoUseCase(pedidos ports.PedidoGateway, productos ports.ProductoGateway) *PedidoUseCase {
	return &PedidoUseCase{pedidos: pedidos, productos: productos, hoy: time.Now}
}

// List devuelve todos los pedidos.
func (uc *PedidoUseCase) List(ctx context.Context, s *session.Session) ([]entity.Pedido, error) {
	return uc.pedidos.List(ctx, s)
}

// Get devuelve un pedido por id.
func (uc *PedidoUseCase) Get(ctx context.Context, s *session.Session, id int64) (*entity.Pedido, error) {
	return uc.pedidos.Get(ctx, s, id)
}

// Create valida el formulario, lo normaliza al payload del backend (ids y
// cantidades numéricos, fecha a medianoche) y crea el pedido.
func (uc *PedidoUseCase) Create(ctx context.Context, s *session.Session, form validation.PedidoForm) (*entity.Pedido, error) {
	if err := errSiInvalido(form.Validar(validation.NuevoContexto(uc.hoy()))); err != nil {
		return nil, err
	}

	idCliente, err := strconv.ParseInt(form.IDCliente, 10, 64)
	if err != nil {
		return nil, &ValidationError{Campos: map[string]string{"idCliente": "Select Cliente"}}
	}
	fecha, err := entity.ParseFecha(form.Fecha)
	if err != nil {
		return nil, &ValidationError{Campos: map[string]string{"fecha": "Fecha inválida"}}
	}

	payload := dto.PedidoCreate{
		IDCliente: idCliente,
		Fecha:     entity.NuevaFecha(fecha.Dia()),
		Productos: make([]dto.LineaCreate, 0, len(form.Productos)),
	}
	for _, linea := range form.Productos {
		idProd, _ := strconv.ParseInt(linea.IDProd, 10, 64)
		cantidad, _ := strconv.ParseInt(strings.TrimSpace(linea.Cantidad), 10, 64)
		payload.Productos = append(payload.Productos, dto.LineaCreate{IDProd: idProd, Cantidad: cantidad})
	}

	return uc.pedidos.Create(ctx, s, payload)
}

// Delete elimina el pedido.
func (uc *PedidoUseCase) Delete(ctx context.Context, s *session.Session, id int64) error {
	return uc.pedidos.Delete(ctx, s, id)
}

// CotizacionDTO total en vivo de un pedido en construcción.
type CotizacionDTO struct {
	Subtotales []SubtotalDTO   `json:"subtotales"`
	Total      decimal.Decimal `json:"total"`
}

// SubtotalDTO subtotal de una línea; cero si el producto aún no está resuelto.
type SubtotalDTO struct {
	IDProd   int64           `json:"idProd,omitempty"`
	Cantidad int64           `json:"cantidad"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Cotizar calcula los subtotales y el total del pedido en construcción contra
// el catálogo vigente. No persiste nada; las líneas con producto sin
// seleccionar o cantidad ilegible aportan cero, igual que en el formulario.
func (uc *PedidoUseCase) Cotizar(ctx context.Context, s *session.Session, lineas []validation.LineaForm) (*CotizacionDTO, error) {
	catalogo, err := uc.productos.List(ctx, s)
	if err != nil {
		return nil, err
	}
	porID := make(map[int64]*entity.Producto, len(catalogo))
	for i := range catalogo {
		porID[catalogo[i].IDProd] = &catalogo[i]
	}

	cotizacion := &CotizacionDTO{Total: decimal.Zero}
	for _, linea := range lineas {
		idProd, _ := strconv.ParseInt(linea.IDProd, 10, 64)
		cantidad, _ := strconv.ParseInt(strings.TrimSpace(linea.Cantidad), 10, 64)
		subtotal := pricing.Subtotal(porID[idProd], cantidad)
		cotizacion.Subtotales = append(cotizacion.Subtotales, SubtotalDTO{
			IDProd:   idProd,
			Cantidad: cantidad,
			Subtotal: pricing.Redondear(subtotal),
		})
		cotizacion.Total = cotizacion.Total.Add(subtotal)
	}
	cotizacion.Total = pricing.Redondear(cotizacion.Total)
	return cotizacion, nil
}
