package usecase

import "github.com/salesmaster/ventas-console/internal/domain/validation"

// ValidationError transporta el resultado de una validación fallida hacia la
// capa HTTP. Cuando se produce, no se hace ninguna llamada al backend.
type ValidationError struct {
	Campos map[string]string
}

func (e *ValidationError) Error() string { return "validación de formulario fallida" }

// errSiInvalido convierte un Resultado inválido en *ValidationError.
func errSiInvalido(r validation.Resultado) error {
	if r.Valido {
		return nil
	}
	return &ValidationError{Campos: r.Campos}
}
