package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/application/ports"
	"github.com/salesmaster/ventas-console/internal/application/session"
	"github.com/salesmaster/ventas-console/internal/domain/entity"
	"github.com/salesmaster/ventas-console/internal/domain/validation"
)

// ProductoUseCase pantalla de productos: listado y CRUD con validación previa.
type ProductoUseCase struct {
	gw  ports.ProductoGateway
	hoy func() time.Time
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(gw ports.ProductoGateway) *ProductoUseCase {
	return &ProductoUseCase{gw: gw, hoy: time.Now}
}

// List devuelve todos los productos.
func (uc *ProductoUseCase) List(ctx context.Context, s *session.Session) ([]entity.Producto, error) {
	return uc.gw.List(ctx, s)
}

// Get devuelve un producto por id.
func (uc *ProductoUseCase) Get(ctx context.Context, s *session.Session, id int64) (*entity.Producto, error) {
	return uc.gw.Get(ctx, s, id)
}

// Create valida el formulario, normaliza (nombre recortado, precio a decimal)
// y crea el producto.
func (uc *ProductoUseCase) Create(ctx context.Context, s *session.Session, form validation.ProductoForm) (*entity.Producto, error) {
	payload, err := uc.normalizar(form)
	if err != nil {
		return nil, err
	}
	return uc.gw.Create(ctx, s, payload)
}

// Update valida el formulario y actualiza el producto.
func (uc *ProductoUseCase) Update(ctx context.Context, s *session.Session, id int64, form validation.ProductoForm) (*entity.Producto, error) {
	payload, err := uc.normalizar(form)
	if err != nil {
		return nil, err
	}
	return uc.gw.Update(ctx, s, id, payload)
}

// Delete elimina el producto.
func (uc *ProductoUseCase) Delete(ctx context.Context, s *session.Session, id int64) error {
	return uc.gw.Delete(ctx, s, id)
}

func (uc *ProductoUseCase) normalizar(form validation.ProductoForm) (dto.ProductoPayload, error) {
	if err := errSiInvalido(form.Validar(validation.NuevoContexto(uc.hoy()))); err != nil {
		return dto.ProductoPayload{}, err
	}
	// La validación ya garantizó que el precio parsea y está en rango.
	precio, _ := decimal.NewFromString(strings.TrimSpace(form.Precio))
	return dto.ProductoPayload{Nombre: strings.TrimSpace(form.Nombre), Precio: precio}, nil
}
