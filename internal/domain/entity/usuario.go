package entity

// Roles que acepta el backend de ventas al registrar un usuario.
const (
	RoleAdmin    = "ADMIN"
	RoleVendedor = "VENDEDOR"
)

// Roles conjunto cerrado de roles válidos.
var Roles = []string{RoleAdmin, RoleVendedor}

// RolValido informa si role pertenece al conjunto permitido.
func RolValido(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Perfil datos del usuario autenticado, tal como los expone el backend
// (anidados bajo "user" o aplanados; el gateway normaliza ambas formas).
type Perfil struct {
	UserID    int64  `json:"userId,omitempty"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Role      string `json:"role"`
}
