package entity

import "github.com/shopspring/decimal"

// Factura representa una factura emitida contra exactamente un pedido.
// Total lo deriva el backend del pedido enlazado.
type Factura struct {
	IDFactura int64           `json:"idFactura"`
	IDPedido  int64           `json:"idPedido"`
	Fecha     Fecha           `json:"fecha"`
	Nro       string          `json:"nro,omitempty"`
	Total     decimal.Decimal `json:"total"`
}
