// Package validation contiene las reglas de validación de formularios de la
// consola. Funciones puras, síncronas y sin I/O: reciben el estado crudo del
// formulario (strings, tal como los captura el navegador) y un Contexto con
// los datos ya consultados que necesitan las reglas cruzadas.
package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// Patrones compartidos entre formularios. Se mantienen idénticos a los de las
// pantallas originales de la consola: cambiarlos rompe la compatibilidad con
// lo que el backend ya acepta.
var (
	// Dominio con punto y TLD de al menos 2 letras; los límites de longitud
	// (6-254 total, 1-64 antes de la @) se comprueban aparte.
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

	soloDigitosRe = regexp.MustCompile(`^[0-9]+$`)

	// Letras latinas con acentos y ñ/Ñ, más espacios.
	nombreLetrasRe = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ\s]+$`)

	// Igual que el anterior pero admitiendo dígitos (nombres de producto).
	nombreAlnumRe = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñ0-9\s]+$`)

	tieneLetraRe  = regexp.MustCompile(`[A-Za-z]`)
	tieneDigitoRe = regexp.MustCompile(`[0-9]`)
)

// Resultado de validar un formulario: validez global y mensaje por campo.
// Cada envío re-evalúa todos los campos; Campos solo contiene los que fallaron.
type Resultado struct {
	Valido bool
	Campos map[string]string
}

func nuevoResultado() Resultado {
	return Resultado{Valido: true, Campos: map[string]string{}}
}

func (r *Resultado) fallo(campo, mensaje string) {
	// Se conserva el primer mensaje por campo, como en los formularios originales.
	if _, ok := r.Campos[campo]; !ok {
		r.Campos[campo] = mensaje
	}
	r.Valido = false
}

// Contexto datos cruzados que algunas reglas necesitan: el día actual
// (inyectado para testabilidad) y colecciones ya consultadas.
type Contexto struct {
	Hoy      time.Time
	Pedidos  []entity.Pedido
	Facturas []entity.Factura
}

// NuevoContexto construye un contexto con el día indicado.
func NuevoContexto(hoy time.Time) Contexto {
	return Contexto{Hoy: hoy}
}

// Form es cualquier formulario de la consola. El "entityKind" del contrato
// original queda implícito en el tipo concreto.
type Form interface {
	Validar(ctx Contexto) Resultado
}

// emailValido reproduce el patrón de email de la consola: 1-64 caracteres
// antes de la primera @, dominio con punto y TLD ≥2 letras, longitud total
// entre 6 y 254.
func emailValido(email string) bool {
	if len(email) < 6 || len(email) > 254 {
		return false
	}
	at := strings.Index(email, "@")
	if at < 1 || at > 64 {
		return false
	}
	return emailRe.MatchString(email)
}
