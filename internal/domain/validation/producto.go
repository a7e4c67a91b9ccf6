package validation

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Límites de precio del formulario de producto.
var (
	precioMinimo = decimal.NewFromFloat(0.1)
	precioMaximo = decimal.NewFromFloat(999999.99)
)

// ProductoForm estado del formulario de producto. Precio llega como texto.
type ProductoForm struct {
	Nombre string `json:"nombre"`
	Precio string `json:"precio"`
}

// Validar aplica las reglas del formulario de producto.
// El nombre puede tener letras y números pero no solo números; el precio debe
// ser un decimal dentro de [0.1, 999999.99], distinguiendo "no numérico" de
// "fuera de rango".
func (f ProductoForm) Validar(_ Contexto) Resultado {
	r := nuevoResultado()

	nombre := strings.TrimSpace(f.Nombre)
	switch {
	case nombre == "":
		r.fallo("nombre", "Nombre is required")
	case soloDigitosRe.MatchString(nombre):
		r.fallo("nombre", "El nombre no puede contener solo números")
	case !nombreAlnumRe.MatchString(nombre):
		r.fallo("nombre", "El nombre solo puede contener letras y números")
	}

	if f.Precio == "" {
		r.fallo("precio", "Precio is required")
		return r
	}
	precio, err := decimal.NewFromString(strings.TrimSpace(f.Precio))
	switch {
	case err != nil:
		r.fallo("precio", "Precio must be a valid number")
	case precio.LessThan(precioMinimo):
		r.fallo("precio", "El precio debe ser mayor o igual a 0.1")
	case precio.GreaterThan(precioMaximo):
		r.fallo("precio", "El precio no puede ser mayor a 999,999.99")
	}

	return r
}
