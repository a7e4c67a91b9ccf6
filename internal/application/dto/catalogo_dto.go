package dto

import "github.com/shopspring/decimal"

// ClientePayload cuerpo de creación/actualización de cliente, ya normalizado.
type ClientePayload struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// ProductoPayload cuerpo de creación/actualización de producto, ya normalizado
// (precio convertido de texto a decimal).
type ProductoPayload struct {
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}
