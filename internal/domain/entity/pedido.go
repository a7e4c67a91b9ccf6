package entity

import "github.com/shopspring/decimal"

// LineaPedido una línea de pedido: producto y cantidad.
// NombreProducto lo añade el backend en las lecturas; no se envía al crear.
type LineaPedido struct {
	IDProd         int64  `json:"idProd"`
	Cantidad       int64  `json:"cantidad"`
	NombreProducto string `json:"nombreProducto,omitempty"`
}

// Pedido representa un pedido: líneas de producto contra un cliente.
// Total lo calcula el backend; la consola lo usa tal cual para los agregados.
type Pedido struct {
	IDPedido      int64           `json:"idPedido"`
	IDCliente     int64           `json:"idCliente"`
	NombreCliente string          `json:"nombreCliente,omitempty"`
	Fecha         Fecha           `json:"fecha"`
	Productos     []LineaPedido   `json:"productos"`
	Total         decimal.Decimal `json:"total"`
}
