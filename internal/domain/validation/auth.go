package validation

import (
	"strings"

	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

// Longitudes permitidas de contraseña.
const (
	passwordMin = 6
	passwordMax = 32
)

// RegistroForm estado del formulario de registro de usuario.
type RegistroForm struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// Validar aplica las reglas del formulario de registro.
func (f RegistroForm) Validar(_ Contexto) Resultado {
	r := nuevoResultado()

	firstname := strings.TrimSpace(f.Firstname)
	if firstname == "" {
		r.fallo("firstname", "Se requiere el primer nombre")
	} else if !nombreLetrasRe.MatchString(firstname) {
		r.fallo("firstname", "El nombre solo puede contener letras")
	}

	lastname := strings.TrimSpace(f.Lastname)
	if lastname == "" {
		r.fallo("lastname", "Se requiere el apellido")
	} else if !nombreLetrasRe.MatchString(lastname) {
		r.fallo("lastname", "El apellido solo puede contener letras")
	}

	email := strings.TrimSpace(f.Email)
	if email == "" {
		r.fallo("email", "Se requiere el email")
	} else if !emailValido(email) {
		r.fallo("email", "El email no es correcto")
	}

	password := strings.TrimSpace(f.Password)
	switch {
	case password == "":
		r.fallo("password", "Se requiere la contraseña")
	case len(f.Password) < passwordMin:
		r.fallo("password", "La contraseña debe tener al menos 6 caracteres")
	case len(f.Password) > passwordMax:
		r.fallo("password", "La contraseña debe tener como máximo 32 caracteres")
	case !tieneLetraRe.MatchString(f.Password) || !tieneDigitoRe.MatchString(f.Password):
		r.fallo("password", "La contraseña debe contener letras y números")
	}

	switch {
	case f.Role == "":
		r.fallo("role", "Seleccione un rol")
	case !entity.RolValido(f.Role):
		r.fallo("role", "Rol inválido")
	}

	return r
}

// LoginForm estado del formulario de inicio de sesión.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validar aplica las reglas del formulario de login.
func (f LoginForm) Validar(_ Contexto) Resultado {
	r := nuevoResultado()

	email := strings.TrimSpace(f.Email)
	if email == "" {
		r.fallo("email", "Email is required")
	} else if !emailValido(email) {
		r.fallo("email", "Email is not correct")
	}

	if strings.TrimSpace(f.Password) == "" {
		r.fallo("password", "Password is required")
	}

	return r
}
