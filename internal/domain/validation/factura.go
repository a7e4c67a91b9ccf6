package validation

import (
	"math"
	"strconv"
	"strings"

	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// nroMaxCaracteres máximo de caracteres del número de factura.
const nroMaxCaracteres = 20

// FacturaForm estado del formulario de factura.
type FacturaForm struct {
	IDPedido string `json:"idPedido"`
	Fecha    string `json:"fecha"`
	Nro      string `json:"nro"`
}

// Validar aplica las reglas del formulario de factura.
//
// Regla canónica de fecha: la factura solo puede registrarse el día de hoy y
// nunca antes de la fecha del pedido referenciado. Las comparaciones son por
// día calendario (YYYY-MM-DD), igual que en la consola original.
func (f FacturaForm) Validar(ctx Contexto) Resultado {
	r := nuevoResultado()

	if f.IDPedido == "" {
		r.fallo("idPedido", "Select Pedido")
	} else if pedidoFacturado(f.IDPedido, ctx.Facturas) {
		r.fallo("idPedido", "El pedido ya tiene una factura")
	}

	if strings.TrimSpace(f.Fecha) == "" {
		r.fallo("fecha", "Fecha is required")
	} else if fecha, err := entity.ParseFecha(f.Fecha); err != nil {
		r.fallo("fecha", "Fecha inválida")
	} else {
		dia := fecha.DiaISO()
		hoy := entity.NuevaFecha(ctx.Hoy).DiaISO()

		if pedido := buscarPedido(f.IDPedido, ctx.Pedidos); pedido != nil && !pedido.Fecha.IsZero() {
			diaPedido := pedido.Fecha.DiaISO()
			switch {
			case dia < diaPedido:
				r.fallo("fecha", "La fecha de la factura no puede ser anterior a la fecha del pedido")
			case dia > hoy:
				r.fallo("fecha", "Solo se pueden registrar facturas del día de hoy")
			case dia < hoy:
				r.fallo("fecha", "La fecha no puede ser anterior al día de hoy")
			}
		} else {
			switch {
			case dia < hoy:
				r.fallo("fecha", "La fecha no puede ser anterior al día de hoy")
			case dia > hoy:
				r.fallo("fecha", "Solo se pueden registrar facturas del día de hoy")
			}
		}
	}

	if nro := strings.TrimSpace(f.Nro); nro != "" {
		// ParseFloat admite cadenas numéricas de más de 20 dígitos, de modo que
		// la regla de longitud se evalúa con el mensaje correcto. También
		// acepta "Infinity" y "NaN", que aquí no son números de factura.
		n, err := strconv.ParseFloat(nro, 64)
		switch {
		case err != nil || math.IsNaN(n) || math.IsInf(n, 0) || n < 0:
			r.fallo("nro", "El número de factura debe ser un número positivo")
		case len(f.Nro) > nroMaxCaracteres:
			r.fallo("nro", "El número de factura no puede tener más de 20 caracteres")
		}
	}

	return r
}

// buscarPedido localiza un pedido por su id en formato texto.
func buscarPedido(idPedido string, pedidos []entity.Pedido) *entity.Pedido {
	id, err := strconv.ParseInt(idPedido, 10, 64)
	if err != nil {
		return nil
	}
	for i := range pedidos {
		if pedidos[i].IDPedido == id {
			return &pedidos[i]
		}
	}
	return nil
}

// pedidoFacturado informa si el pedido ya aparece como idPedido en alguna factura.
func pedidoFacturado(idPedido string, facturas []entity.Factura) bool {
	id, err := strconv.ParseInt(idPedido, 10, 64)
	if err != nil {
		return false
	}
	for _, f := range facturas {
		if f.IDPedido == id {
			return true
		}
	}
	return false
}

// PedidosDisponibles devuelve los pedidos que aún no tienen factura, en el
// orden en que llegaron. Es la lista que la consola ofrece al crear una factura.
func PedidosDisponibles(pedidos []entity.Pedido, facturas []entity.Factura) []entity.Pedido {
	facturados := map[int64]bool{}
	for _, f := range facturas {
		if f.IDPedido != 0 {
			facturados[f.IDPedido] = true
		}
	}
	disponibles := make([]entity.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if !facturados[p.IDPedido] {
			disponibles = append(disponibles, p)
		}
	}
	return disponibles
}
