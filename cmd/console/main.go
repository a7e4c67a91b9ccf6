package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/salesmaster/ventas-console/internal/application/auth"
	"github.com/salesmaster/ventas-console/internal/application/dashboard"
	"github.com/salesmaster/ventas-console/internal/application/usecase"
	"github.com/salesmaster/ventas-console/internal/infrastructure/api"
	httpRouter "github.com/salesmaster/ventas-console/internal/interfaces/http"
	"github.com/salesmaster/ventas-console/pkg/config"
	"github.com/salesmaster/ventas-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Msg("iniciando consola")

	cliente := api.NewClient(cfg.API, log)

	clienteGW := api.NewClienteGateway(cliente)
	productoGW := api.NewProductoGateway(cliente)
	pedidoGW := api.NewPedidoGateway(cliente)
	facturaGW := api.NewFacturaGateway(cliente)
	authGW := api.NewAuthGateway(cliente)

	authUC := auth.NewUseCase(authGW)
	clienteUC := usecase.NewClienteUseCase(clienteGW)
	productoUC := usecase.NewProductoUseCase(productoGW)
	pedidoUC := usecase.NewPedidoUseCase(pedidoGW, productoGW)
	facturaUC := usecase.NewFacturaUseCase(facturaGW, pedidoGW)
	dashboardUC := dashboard.NewUseCase(clienteGW, productoGW, pedidoGW, facturaGW)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestIDMiddleware())
	app.Use(httpRouter.LoggingMiddleware(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ClienteUC:   clienteUC,
		ProductoUC:  productoUC,
		PedidoUC:    pedidoUC,
		FacturaUC:   facturaUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("consola detenida")
}
