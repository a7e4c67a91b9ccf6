package dto

import "github.com/shopspring/decimal"

// ResumenDTO respuesta de GET /api/dashboard.
// Todo se deriva de las cuatro colecciones completas; no hay consultas extra.
type ResumenDTO struct {
	Conteos ConteosDTO `json:"conteos"`

	// Top 5 clientes por gasto acumulado (orden descendente).
	TopClientes []ClienteRankingDTO `json:"topClientes"`

	// Top 5 productos por cantidad vendida (orden descendente).
	TopProductos []ProductoRankingDTO `json:"topProductos"`

	// Ingresos del mes en curso: suma de totales de facturas del mes de `ahora`.
	IngresosMes decimal.Decimal `json:"ingresosMes"`
}

// ConteosDTO cardinalidad de cada colección.
type ConteosDTO struct {
	Clientes  int `json:"clientes"`
	Productos int `json:"productos"`
	Pedidos   int `json:"pedidos"`
	Facturas  int `json:"facturas"`
}

// ClienteRankingDTO un cliente en el widget de top clientes.
// Nombre viene truncado a 15 caracteres con elipsis.
type ClienteRankingDTO struct {
	IDCliente int64           `json:"idCliente"`
	Nombre    string          `json:"nombre"`
	Total     decimal.Decimal `json:"total"`
	Pedidos   int             `json:"pedidos"`
}

// ProductoRankingDTO un producto en el widget de top productos.
// Nombre viene truncado a 20 caracteres con elipsis.
type ProductoRankingDTO struct {
	IDProd   int64  `json:"idProd"`
	Nombre   string `json:"nombre"`
	Cantidad int64  `json:"cantidad"`
	Pedidos  int    `json:"pedidos"`
}
