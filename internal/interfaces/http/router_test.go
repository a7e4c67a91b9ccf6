package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesmaster/ventas-console/internal/application/auth"
	"github.com/salesmaster/ventas-console/internal/application/dashboard"
	"github.com/salesmaster/ventas-console/internal/application/usecase"
	"github.com/salesmaster/ventas-console/internal/infrastructure/api"
	apphttp "github.com/salesmaster/ventas-console/internal/interfaces/http"
	"github.com/salesmaster/ventas-console/pkg/config"
	"github.com/salesmaster/ventas-console/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: consola completa contra un backend de ventas falso.
// ──────────────────────────────────────────────────────────────────────────────

// backendFalso responde según la ruta con cuerpos fijos, emulando al backend
// de ventas.
func backendFalso(t *testing.T, rutas map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if body, ok := rutas[r.URL.Path]; ok {
			_, _ = w.Write([]byte(body))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// nuevaConsola levanta la aplicación Fiber completa apuntando al backend dado.
func nuevaConsola(t *testing.T, backendURL string) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	cliente := api.NewClient(config.APIConfig{BaseURL: backendURL, TimeoutSeconds: 2}, log)

	clienteGW := api.NewClienteGateway(cliente)
	productoGW := api.NewProductoGateway(cliente)
	pedidoGW := api.NewPedidoGateway(cliente)
	facturaGW := api.NewFacturaGateway(cliente)
	authGW := api.NewAuthGateway(cliente)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewUseCase(authGW),
		ClienteUC:   usecase.NewClienteUseCase(clienteGW),
		ProductoUC:  usecase.NewProductoUseCase(productoGW),
		PedidoUC:    usecase.NewPedidoUseCase(pedidoGW, productoGW),
		FacturaUC:   usecase.NewFacturaUseCase(facturaGW, pedidoGW),
		DashboardUC: dashboard.NewUseCase(clienteGW, productoGW, pedidoGW, facturaGW),
	})
	return app
}

func hacer(t *testing.T, app *fiber.App, method, path, token, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodificarError(t *testing.T, resp *http.Response) (code, message string, fields map[string]string) {
	t.Helper()
	var cuerpo struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cuerpo))
	return cuerpo.Code, cuerpo.Message, cuerpo.Fields
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación de rutas protegidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRutasProtegidas_SinToken(t *testing.T) {
	app := nuevaConsola(t, "http://127.0.0.1:0")

	for _, ruta := range []string{
		"/api/clientes/",
		"/api/productos/",
		"/api/pedidos/",
		"/api/facturas/",
		"/api/dashboard",
		"/api/auth/me",
	} {
		t.Run(ruta, func(t *testing.T) {
			resp := hacer(t, app, http.MethodGet, ruta, "", "")
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			code, _, _ := decodificarError(t, resp)
			assert.Equal(t, "UNAUTHORIZED", code)
		})
	}
}

func TestRutasProtegidas_EsquemaInvalido(t *testing.T) {
	app := nuevaConsola(t, "http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodGet, "/api/clientes/", nil)
	req.Header.Set("Authorization", "Basic abc123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	code, _, _ := decodificarError(t, resp)
	assert.Equal(t, "UNAUTHORIZED", code)
}

func TestLoginYRegister_SonPublicos(t *testing.T) {
	backend := backendFalso(t, map[string]string{
		"/auth/login": `{"token":"abc","user":{"email":"ana@empresa.com"}}`,
	})
	app := nuevaConsola(t, backend.URL)

	resp := hacer(t, app, http.MethodPost, "/api/auth/login", "",
		`{"email":"ana@empresa.com","password":"clave123"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var sesion struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sesion))
	assert.Equal(t, "abc", sesion.Token)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación y mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearCliente_Invalido(t *testing.T) {
	app := nuevaConsola(t, "http://127.0.0.1:0")

	resp := hacer(t, app, http.MethodPost, "/api/clientes/", "tok",
		`{"nombre":"","email":"mal"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	code, _, fields := decodificarError(t, resp)
	assert.Equal(t, "VALIDATION", code)
	assert.Equal(t, "Nombre is required", fields["nombre"])
	assert.Equal(t, "Email is not correct", fields["email"])
}

func TestCrearCliente_CuerpoIlegible(t *testing.T) {
	app := nuevaConsola(t, "http://127.0.0.1:0")

	resp := hacer(t, app, http.MethodPost, "/api/clientes/", "tok", `{no-es-json`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	code, _, _ := decodificarError(t, resp)
	assert.Equal(t, "INVALID_BODY", code)
}

func TestBackendCaido_Respuesta502(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()
	app := nuevaConsola(t, backend.URL)

	resp := hacer(t, app, http.MethodGet, "/api/clientes/", "tok", "")

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	code, _, _ := decodificarError(t, resp)
	assert.Equal(t, "UNREACHABLE", code)
}

func TestBackendRechaza401_SesionExpirada(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(backend.Close)
	app := nuevaConsola(t, backend.URL)

	resp := hacer(t, app, http.MethodGet, "/api/clientes/", "tok-rechazado", "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	code, _, _ := decodificarError(t, resp)
	assert.Equal(t, "SESSION_EXPIRED", code)
}

func TestIDNoNumerico(t *testing.T) {
	app := nuevaConsola(t, "http://127.0.0.1:0")

	resp := hacer(t, app, http.MethodGet, "/api/clientes/abc", "tok", "")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujos completos contra el backend falso
// ──────────────────────────────────────────────────────────────────────────────

func TestListarClientes(t *testing.T) {
	backend := backendFalso(t, map[string]string{
		"/clientes": `{"data":[{"idCliente":1,"nombre":"Ana"},{"idCliente":2,"nombre":"Bruno"}]}`,
	})
	app := nuevaConsola(t, backend.URL)

	resp := hacer(t, app, http.MethodGet, "/api/clientes/", "tok", "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var clientes []struct {
		IDCliente int64  `json:"idCliente"`
		Nombre    string `json:"nombre"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&clientes))
	require.Len(t, clientes, 2)
	assert.Equal(t, "Ana", clientes[0].Nombre)
}

func TestDashboard(t *testing.T) {
	backend := backendFalso(t, map[string]string{
		"/clientes":  `[{"idCliente":1,"nombre":"Ana"}]`,
		"/productos": `[{"idProd":1,"nombre":"Café","precio":10}]`,
		"/pedidos":   `[{"idPedido":1,"idCliente":1,"total":130,"productos":[{"idProd":1,"cantidad":3}]}]`,
		"/facturas":  `[]`,
	})
	app := nuevaConsola(t, backend.URL)

	resp := hacer(t, app, http.MethodGet, "/api/dashboard", "tok", "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var resumen struct {
		Conteos struct {
			Clientes int `json:"clientes"`
			Pedidos  int `json:"pedidos"`
		} `json:"conteos"`
		TopClientes []struct {
			Nombre string `json:"nombre"`
		} `json:"topClientes"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&resumen))
	assert.Equal(t, 1, resumen.Conteos.Clientes)
	assert.Equal(t, 1, resumen.Conteos.Pedidos)
	require.Len(t, resumen.TopClientes, 1)
	assert.Equal(t, "Ana", resumen.TopClientes[0].Nombre)
}

func TestPedidosDisponibles(t *testing.T) {
	backend := backendFalso(t, map[string]string{
		"/pedidos":  `[{"idPedido":1},{"idPedido":2}]`,
		"/facturas": `[{"idFactura":1,"idPedido":1}]`,
	})
	app := nuevaConsola(t, backend.URL)

	resp := hacer(t, app, http.MethodGet, "/api/facturas/pedidos-disponibles", "tok", "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var pedidos []struct {
		IDPedido int64 `json:"idPedido"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pedidos))
	require.Len(t, pedidos, 1)
	assert.Equal(t, int64(2), pedidos[0].IDPedido)
}

func TestCotizarPedido(t *testing.T) {
	backend := backendFalso(t, map[string]string{
		"/productos": `[{"idProd":1,"nombre":"Café","precio":"10.10"}]`,
	})
	app := nuevaConsola(t, backend.URL)

	resp := hacer(t, app, http.MethodPost, "/api/pedidos/cotizar", "tok",
		`{"productos":[{"idProd":"1","cantidad":"2"},{"idProd":"","cantidad":"9"}]}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var cotizacion struct {
		Subtotales []struct {
			Subtotal float64 `json:"subtotal"`
		} `json:"subtotales"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cotizacion))
	require.Len(t, cotizacion.Subtotales, 2)
	assert.InDelta(t, 20.20, cotizacion.Subtotales[0].Subtotal, 0.001)
	assert.Zero(t, cotizacion.Subtotales[1].Subtotal)
	assert.InDelta(t, 20.20, cotizacion.Total, 0.001)
}
