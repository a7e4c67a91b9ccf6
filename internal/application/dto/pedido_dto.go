package dto

import "github.com/salesmaster/ventas-console/internal/domain/entity"

// LineaCreate una línea del payload de creación de pedido.
type LineaCreate struct {
	IDProd   int64 `json:"idProd"`
	Cantidad int64 `json:"cantidad"`
}

// PedidoCreate cuerpo de POST /pedidos. La fecha se serializa como
// LocalDateTime a medianoche ("YYYY-MM-DDT00:00:00"), que es lo que espera
// el backend.
type PedidoCreate struct {
	IDCliente int64         `json:"idCliente"`
	Fecha     entity.Fecha  `json:"fecha"`
	Productos []LineaCreate `json:"productos"`
}

// FacturaCreate cuerpo de POST /facturas. Nro solo se envía si el usuario lo
// escribió.
type FacturaCreate struct {
	IDPedido int64        `json:"idPedido"`
	Fecha    entity.Fecha `json:"fecha"`
	Nro      string       `json:"nro,omitempty"`
}
