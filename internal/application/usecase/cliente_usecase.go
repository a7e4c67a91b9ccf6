package usecase

import (
	"context"
	"time"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/ports"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// ClienteUseCase pantalla de clientes: listado y CRUD con validación previa.
type ClienteUseCase struct {
	gw  ports.ClienteGateway
	hoy func() time.Time
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(gw ports.ClienteGateway) *ClienteUseCase {
	return &ClienteUseCase{gw: gw, hoy: time.Now}
}

// List devuelve todos los clientes.
func (uc *ClienteUseCase) List(ctx context.Context, s *session.Session) ([]entity.Cliente, error) {
	return uc.gw.List(ctx, s)
}

// Get devuelve un cliente por id.
func (uc *ClienteUseCase) Get(ctx context.Context, s *session.Session, id int64) (*entity.Cliente, error) {
	return uc.gw.Get(ctx, s, id)
}

// Create valida el formulario y crea el cliente. Con validación fallida
// devuelve *ValidationError y no toca la red.
func (uc *ClienteUseCase) Create(ctx context.Context, s *session.Session, form validation.ClienteForm) (*entity.Cliente, error) {
	if err := errSiInvalido(form.Validar(validation.NuevoContexto(uc.hoy()))); err != nil {
		return nil, err
	}
	return uc.gw.Create(ctx, s, dto.ClientePayload{Nombre: form.Nombre, Email: form.Email})
}

// Update valida el formulario y actualiza el cliente.
func (uc *ClienteUseCase) Update(ctx context.Context, s *session.Session, id int64, form validation.ClienteForm) (*entity.Cliente, error) {
	if err := errSiInvalido(form.Validar(validation.NuevoContexto(uc.hoy()))); err != nil {
		return nil, err
	}
	return uc.gw.Update(ctx, s, id, dto.ClientePayload{Nombre: form.Nombre, Email: form.Email})
}

// Delete elimina el cliente.
func (uc *ClienteUseCase) Delete(ctx context.Context, s *session.Session, id int64) error {
	return uc.gw.Delete(ctx, s, id)
}
