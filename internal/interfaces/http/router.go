package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/salesmaster/ventas-console/internal/application/auth"
	"github.com/salesmaster/ventas-console/internal/application/dashboard"
	"github.com/salesmaster/ventas-console/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	ClienteUC   *usecase.ClienteUseCase
	ProductoUC  *usecase.ProductoUseCase
	PedidoUC    *usecase.PedidoUseCase
	FacturaUC   *usecase.FacturaUseCase
	DashboardUC *dashboard.UseCase
}

// Router registra las rutas de la consola. Todo lo que cuelga de /api exige
// sesión, salvo el registro y el login.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro y login públicos, perfil protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", SessionMiddleware(), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", SessionMiddleware())

	// Clientes
	clientes := protected.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/:id", clienteHandler.Get)
	clientes.Post("/", clienteHandler.Create)
	clientes.Put("/:id", clienteHandler.Update)
	clientes.Delete("/:id", clienteHandler.Delete)

	// Productos
	productos := protected.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Get("/", productoHandler.List)
	productos.Get("/:id", productoHandler.Get)
	productos.Post("/", productoHandler.Create)
	productos.Put("/:id", productoHandler.Update)
	productos.Delete("/:id", productoHandler.Delete)

	// Pedidos (la cotización va antes del parámetro :id)
	pedidos := protected.Group("/pedidos")
	pedidoHandler := NewPedidoHandler(deps.PedidoUC)
	pedidos.Get("/", pedidoHandler.List)
	pedidos.Post("/cotizar", pedidoHandler.Cotizar)
	pedidos.Get("/:id", pedidoHandler.Get)
	pedidos.Post("/", pedidoHandler.Create)
	pedidos.Delete("/:id", pedidoHandler.Delete)

	// Facturas (pedidos-disponibles va antes del parámetro :id)
	facturas := protected.Group("/facturas")
	facturaHandler := NewFacturaHandler(deps.FacturaUC)
	facturas.Get("/", facturaHandler.List)
	facturas.Get("/pedidos-disponibles", facturaHandler.PedidosDisponibles)
	facturas.Get("/:id", facturaHandler.Get)
	facturas.Post("/", facturaHandler.Create)
	facturas.Delete("/:id", facturaHandler.Delete)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Resumen)
}
