// Package auth contiene los casos de uso de autenticación de la consola:
// registro, inicio de sesión y perfil. La verificación real de credenciales
// la hace el backend de ventas; aquí solo se valida el formulario y se
// normaliza la respuesta.
package auth

import (
	"context"
	"time"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/ports"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/application/usecase"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// UseCase casos de uso de autenticación.
type UseCase struct {
	gw  ports.AuthGateway
	hoy func() time.Time
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(gw ports.AuthGateway) *UseCase {
	return &UseCase{gw: gw, hoy: time.Now}
}

// Register valida el formulario de registro y da de alta el usuario.
func (uc *UseCase) Register(ctx context.Context, form validation.RegistroForm) (*entity.Perfil, error) {
	if r := form.Validar(validation.NuevoContexto(uc.hoy())); !r.Valido {
		return nil, &usecase.ValidationError{Campos: r.Campos}
	}
	return uc.gw.Register(ctx, dto.RegistroPayload{
		Firstname: form.Firstname,
		Lastname:  form.Lastname,
		Email:     form.Email,
		Password:  form.Password,
		Role:      form.Role,
	})
}

// Login valida el formulario y abre sesión contra el backend. La respuesta
// llega ya normalizada por el gateway (token + perfil) venga como venga.
func (uc *UseCase) Login(ctx context.Context, form validation.LoginForm) (*dto.SesionIniciada, error) {
	if r := form.Validar(validation.NuevoContexto(uc.hoy())); !r.Valido {
		return nil, &usecase.ValidationError{Campos: r.Campos}
	}
	return uc.gw.Login(ctx, dto.Credenciales{Email: form.Email, Password: form.Password})
}

// Me devuelve el perfil del usuario de la sesión.
func (uc *UseCase) Me(ctx context.Context, s *session.Session) (*entity.Perfil, error) {
	return uc.gw.Me(ctx, s)
}
