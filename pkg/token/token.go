// Package token inspecciona el Bearer Token emitido por el backend de ventas.
//
// La consola no verifica la firma: el backend remoto es la autoridad y rechaza
// tokens inválidos con 401. Aquí solo se leen los claims para conocer la
// expiración y el perfil sin una vuelta de red.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar JWT más los campos propios del backend de ventas.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"` // "ADMIN" | "VENDEDOR"
}

// Inspect decodifica el token sin verificar la firma y devuelve sus claims.
// Retorna error si el token no es un JWT bien formado.
func Inspect(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token: token vacío")
	}
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("token: decodificar: %w", err)
	}
	return claims, nil
}

// Expired informa si el token trae claim exp y ya venció respecto a now.
// Un token sin exp (u opaco, no decodificable) se considera no expirado:
// la decisión final la toma el backend.
func Expired(tokenString string, now time.Time) bool {
	claims, err := Inspect(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
