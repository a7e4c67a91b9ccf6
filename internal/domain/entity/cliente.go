package entity

// Cliente representa un cliente del sistema de ventas.
type Cliente struct {
	IDCliente int64  `json:"idCliente"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
}
