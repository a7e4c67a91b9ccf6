// Package pricing calcula subtotales de línea y el total de un pedido
// (servicio de dominio, sin I/O).
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// Linea una línea en construcción: el producto puede no estar resuelto todavía
// (selección pendiente en el formulario).
type Linea struct {
	Producto *entity.Producto
	Cantidad int64
}

// Subtotal devuelve cantidad * precio. Una línea sin producto resuelto o con
// cantidad no positiva aporta cero, sin error.
func Subtotal(producto *entity.Producto, cantidad int64) decimal.Decimal {
	if producto == nil || cantidad <= 0 {
		return decimal.Zero
	}
	return producto.Precio.Mul(decimal.NewFromInt(cantidad))
}

// Total devuelve la suma de los subtotales de todas las líneas.
func Total(lineas []Linea) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lineas {
		total = total.Add(Subtotal(l.Producto, l.Cantidad))
	}
	return total
}

// Redondear redondea a 2 decimales. Solo para presentación: los cálculos
// intermedios conservan la precisión completa.
func Redondear(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
