package validation

import "strings"

// ClienteForm estado del formulario de cliente.
type ClienteForm struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// Validar aplica las reglas del formulario de cliente.
func (f ClienteForm) Validar(_ Contexto) Resultado {
	r := nuevoResultado()

	if strings.TrimSpace(f.Nombre) == "" {
		r.fallo("nombre", "Nombre is required")
	}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		r.fallo("email", "Email is required")
	} else if !emailValido(email) {
		r.fallo("email", "Email is not correct")
	}

	return r
}
