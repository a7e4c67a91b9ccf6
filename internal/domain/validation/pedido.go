package validation

import (
	"strconv"
	"strings"

	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// cantidadMaxDigitos máximo de dígitos de la cantidad (999999).
const cantidadMaxDigitos = 6

// LineaForm una línea del formulario de pedido, con valores crudos.
type LineaForm struct {
	IDProd   string `json:"idProd"`
	Cantidad string `json:"cantidad"`
}

// PedidoForm estado del formulario de pedido.
type PedidoForm struct {
	IDCliente string      `json:"idCliente"`
	Fecha     string      `json:"fecha"`
	Productos []LineaForm `json:"productos"`
}

// Validar aplica las reglas del formulario de pedido. La fecha no puede ser un
// día anterior a ctx.Hoy (la hora se ignora). Las líneas comparten un único
// mensaje de error bajo el campo "productos": se reporta la primera falla.
func (f PedidoForm) Validar(ctx Contexto) Resultado {
	r := nuevoResultado()

	if f.IDCliente == "" {
		r.fallo("idCliente", "Select Cliente")
	}

	if strings.TrimSpace(f.Fecha) == "" {
		r.fallo("fecha", "Fecha is required")
	} else if fecha, err := entity.ParseFecha(f.Fecha); err != nil {
		r.fallo("fecha", "Fecha inválida")
	} else {
		// Comparación por día calendario (YYYY-MM-DD): el formulario manda el
		// día a pelo y la zona del servidor no debe entrar en la regla.
		hoy := entity.NuevaFecha(ctx.Hoy).DiaISO()
		if fecha.DiaISO() < hoy {
			r.fallo("fecha", "La fecha no puede ser anterior a la fecha actual")
		}
	}

	if len(f.Productos) == 0 {
		r.fallo("productos", "At least one product is required")
		return r
	}
	vistos := map[string]bool{}
	for _, linea := range f.Productos {
		if linea.IDProd == "" {
			r.fallo("productos", "Todos los productos deben estar seleccionados")
			break
		}
		texto := strings.TrimSpace(linea.Cantidad)
		cantidad, err := strconv.ParseInt(texto, 10, 64)
		if texto == "" || err != nil || cantidad <= 0 {
			r.fallo("productos", "La cantidad debe ser mayor a 0")
			break
		}
		if len(texto) > cantidadMaxDigitos {
			r.fallo("productos", "La cantidad no puede tener más de 6 dígitos")
			break
		}
		if vistos[linea.IDProd] {
			r.fallo("productos", "No se puede repetir el mismo producto en el pedido")
			break
		}
		vistos[linea.IDProd] = true
	}

	return r
}
