package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesmaster/ventas-console/internal/application/dto"
	"github.com/salesmaster/ventas-console/internal/domain"
	"github.com/salesmaster/ventas-console/internal/infrastructure/api"
)

var credsTest = dto.Credenciales{Email: "ana@empresa.com", Password: "clave123"}

func TestAuthGateway_Login_Normalizacion(t *testing.T) {
	casos := []struct {
		nombre string
		body   string
		token  string
		email  string
	}{
		{
			nombre: "token y user anidado",
			body:   `{"token":"abc","user":{"userId":1,"email":"ana@empresa.com","role":"ADMIN"}}`,
			token:  "abc",
			email:  "ana@empresa.com",
		},
		{
			nombre: "accessToken en lugar de token",
			body:   `{"accessToken":"xyz","user":{"email":"ana@empresa.com"}}`,
			token:  "xyz",
			email:  "ana@empresa.com",
		},
		{
			nombre: "perfil aplanado al tope",
			body:   `{"token":"abc","userId":1,"email":"ana@empresa.com","firstname":"Ana","role":"VENDEDOR"}`,
			token:  "abc",
			email:  "ana@empresa.com",
		},
		{
			nombre: "todo envuelto en data",
			body:   `{"data":{"token":"abc","user":{"email":"ana@empresa.com"}}}`,
			token:  "abc",
			email:  "ana@empresa.com",
		},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			srv := servidor(t, http.StatusOK, c.body)
			gw := api.NewAuthGateway(nuevoCliente(t, srv.URL))

			sesion, err := gw.Login(context.Background(), credsTest)

			require.NoError(t, err)
			assert.Equal(t, c.token, sesion.Token)
			assert.Equal(t, c.email, sesion.User.Email)
		})
	}
}

func TestAuthGateway_Login_SinToken(t *testing.T) {
	// Una respuesta 2xx sin token en ninguna forma conocida es un error.
	srv := servidor(t, http.StatusOK, `{"user":{"email":"ana@empresa.com"}}`)
	gw := api.NewAuthGateway(nuevoCliente(t, srv.URL))

	_, err := gw.Login(context.Background(), credsTest)

	assert.ErrorIs(t, err, domain.ErrTokenAusente)
}

func TestAuthGateway_Login_CredencialesRechazadas(t *testing.T) {
	srv := servidor(t, http.StatusUnauthorized, `{}`)
	gw := api.NewAuthGateway(nuevoCliente(t, srv.URL))

	_, err := gw.Login(context.Background(), credsTest)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Credenciales incorrectas. Verifica tu email y contraseña.", apiErr.Message)
}

func TestAuthGateway_Register(t *testing.T) {
	srv := servidor(t, http.StatusCreated, `{"data":{"userId":4,"email":"ana@empresa.com","firstname":"Ana","lastname":"Gómez","role":"VENDEDOR"}}`)
	gw := api.NewAuthGateway(nuevoCliente(t, srv.URL))

	perfil, err := gw.Register(context.Background(), dto.RegistroPayload{
		Firstname: "Ana", Lastname: "Gómez",
		Email: "ana@empresa.com", Password: "clave123", Role: "VENDEDOR",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), perfil.UserID)
	assert.Equal(t, "Ana", perfil.Firstname)
	assert.Equal(t, "VENDEDOR", perfil.Role)
}

func TestAuthGateway_Me(t *testing.T) {
	srv := servidor(t, http.StatusOK, `{"userId":4,"email":"ana@empresa.com","role":"ADMIN"}`)
	gw := api.NewAuthGateway(nuevoCliente(t, srv.URL))

	perfil, err := gw.Me(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "ana@empresa.com", perfil.Email)
	assert.Equal(t, "ADMIN", perfil.Role)
}
