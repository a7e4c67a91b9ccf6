// Package dashboard deriva las métricas del panel a partir de las colecciones
// completas ya consultadas: conteos, top clientes por gasto, top productos por
// cantidad e ingresos del mes en curso.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

const (
	topN = 5 // entradas por widget

	// Longitudes de truncado de nombres para los widgets.
	maxNombreCliente  = 15
	maxNombreProducto = 20
)

// CalcularResumen computa el resumen del dashboard. Función pura: sin red,
// sin reloj propio (ahora lo inyecta el caller).
//
// Empates en los rankings: se conserva el orden de primera aparición en la
// colección de entrada (orden estable, determinista).
func CalcularResumen(
	clientes []entity.Cliente,
	productos []entity.Producto,
	pedidos []entity.Pedido,
	facturas []entity.Factura,
	ahora time.Time,
) dto.ResumenDTO {
	return dto.ResumenDTO{
		Conteos: dto.ConteosDTO{
			Clientes:  len(clientes),
			Productos: len(productos),
			Pedidos:   len(pedidos),
			Facturas:  len(facturas),
		},
		TopClientes:  topClientes(clientes, pedidos),
		TopProductos: topProductos(productos, pedidos),
		IngresosMes:  ingresosMes(facturas, ahora),
	}
}

// topClientes agrupa los pedidos por cliente, suma sus totales y devuelve los
// 5 clientes con mayor gasto en orden descendente.
func topClientes(clientes []entity.Cliente, pedidos []entity.Pedido) []dto.ClienteRankingDTO {
	nombres := make(map[int64]string, len(clientes))
	for _, c := range clientes {
		nombres[c.IDCliente] = c.Nombre
	}

	indice := map[int64]int{}
	ranking := []dto.ClienteRankingDTO{}
	for _, p := range pedidos {
		i, visto := indice[p.IDCliente]
		if !visto {
			i = len(ranking)
			indice[p.IDCliente] = i
			ranking = append(ranking, dto.ClienteRankingDTO{IDCliente: p.IDCliente})
		}
		ranking[i].Total = ranking[i].Total.Add(p.Total)
		ranking[i].Pedidos++
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Total.GreaterThan(ranking[b].Total)
	})
	if len(ranking) > topN {
		ranking = ranking[:topN]
	}
	for i := range ranking {
		ranking[i].Nombre = truncar(nombreODesconocido(nombres[ranking[i].IDCliente]), maxNombreCliente)
		ranking[i].Total = ranking[i].Total.Round(2)
	}
	return ranking
}

// topProductos agrupa todas las líneas de todos los pedidos por producto,
// suma cantidades y devuelve los 5 productos más vendidos en orden descendente.
func topProductos(productos []entity.Producto, pedidos []entity.Pedido) []dto.ProductoRankingDTO {
	nombres := make(map[int64]string, len(productos))
	for _, p := range productos {
		nombres[p.IDProd] = p.Nombre
	}

	indice := map[int64]int{}
	ranking := []dto.ProductoRankingDTO{}
	for _, pedido := range pedidos {
		for _, linea := range pedido.Productos {
			i, visto := indice[linea.IDProd]
			if !visto {
				i = len(ranking)
				indice[linea.IDProd] = i
				ranking = append(ranking, dto.ProductoRankingDTO{IDProd: linea.IDProd})
			}
			ranking[i].Cantidad += linea.Cantidad
			ranking[i].Pedidos++
			// El catálogo manda; si el producto ya no existe se usa el nombre
			// que venía en la línea.
			if _, ok := nombres[linea.IDProd]; !ok && linea.NombreProducto != "" {
				nombres[linea.IDProd] = linea.NombreProducto
			}
		}
	}

	sort.SliceStable(ranking, func(a, b int) bool {
		return ranking[a].Cantidad > ranking[b].Cantidad
	})
	if len(ranking) > topN {
		ranking = ranking[:topN]
	}
	for i := range ranking {
		ranking[i].Nombre = truncar(nombreODesconocido(nombres[ranking[i].IDProd]), maxNombreProducto)
	}
	return ranking
}

// ingresosMes suma los totales de las facturas cuya fecha cae en el mismo mes
// y año que ahora.
func ingresosMes(facturas []entity.Factura, ahora time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, f := range facturas {
		if f.Fecha.IsZero() {
			continue
		}
		if f.Fecha.Year() == ahora.Year() && f.Fecha.Month() == ahora.Month() {
			total = total.Add(f.Total)
		}
	}
	return total.Round(2)
}

// truncar recorta a max runas y añade elipsis si el nombre era más largo.
func truncar(s string, max int) string {
	runas := []rune(s)
	if len(runas) <= max {
		return s
	}
	return string(runas[:max]) + "..."
}

func nombreODesconocido(nombre string) string {
	if nombre == "" {
		return "N/A"
	}
	return nombre
}
