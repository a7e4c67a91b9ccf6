package dto

import "github.com/salesmaster/ventas-console/internal/domain/entity"

// RegistroPayload cuerpo de POST /auth/register hacia el backend de ventas.
type RegistroPayload struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// Credenciales cuerpo de POST /auth/login hacia el backend de ventas.
type Credenciales struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SesionIniciada respuesta normalizada de login: token + perfil, sin importar
// en qué forma los devolvió el backend.
type SesionIniciada struct {
	Token string        `json:"token"`
	User  entity.Perfil `json:"user"`
}
