package dto

// Códigos de error que la consola devuelve al navegador.
const (
	CodeValidation     = "VALIDATION"
	CodeInvalidBody    = "INVALID_BODY"
	CodeSessionExpired = "SESSION_EXPIRED"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeUpstream       = "UPSTREAM"
	CodeUnreachable    = "UNREACHABLE"
	CodeNotFound       = "NOT_FOUND"
)

// ErrorResponse cuerpo de error HTTP. Fields trae el mensaje por campo cuando
// la falla es de validación de formulario.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
