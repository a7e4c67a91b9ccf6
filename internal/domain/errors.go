package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrConexion        = errors.New("no se pudo conectar con el servidor")
	ErrSesionExpirada  = errors.New("sesión expirada")
	ErrTokenAusente    = errors.New("token no recibido desde el backend")
	ErrPedidoFacturado = errors.New("el pedido ya tiene una factura")
)
