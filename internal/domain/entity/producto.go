package entity

import "github.com/shopspring/decimal"

// Producto representa un producto vendible con precio unitario.
type Producto struct {
	IDProd int64           `json:"idProd"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}
