package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salesmaster/ventas-console/internal/domain/entity"
)

func TestParseFecha(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada string
		dia     string
	}{
		{nombre: "LocalDateTime sin zona", entrada: "2024-05-01T15:04:05", dia: "2024-05-01"},
		{nombre: "solo día", entrada: "2024-05-01", dia: "2024-05-01"},
		{nombre: "RFC 3339 con zona", entrada: "2024-05-01T15:04:05Z", dia: "2024-05-01"},
		{nombre: "con espacios alrededor", entrada: "  2024-05-01  ", dia: "2024-05-01"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			f, err := entity.ParseFecha(c.entrada)
			require.NoError(t, err)
			assert.Equal(t, c.dia, f.DiaISO())
		})
	}

	t.Run("formato desconocido", func(t *testing.T) {
		_, err := entity.ParseFecha("01/05/2024")
		assert.Error(t, err)
	})
}

func TestFecha_Dia(t *testing.T) {
	f := entity.NuevaFecha(time.Date(2024, 5, 1, 18, 45, 12, 0, time.UTC))

	dia := f.Dia()

	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), dia)
}

func TestFecha_JSON(t *testing.T) {
	t.Run("serializa como LocalDateTime a medianoche", func(t *testing.T) {
		f := entity.NuevaFecha(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
		data, err := json.Marshal(f)
		require.NoError(t, err)
		assert.Equal(t, `"2024-05-01T00:00:00"`, string(data))
	})

	t.Run("fecha cero serializa null", func(t *testing.T) {
		data, err := json.Marshal(entity.Fecha{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("deserializa los tres formatos", func(t *testing.T) {
		for _, payload := range []string{
			`"2024-05-01T15:04:05"`,
			`"2024-05-01"`,
			`"2024-05-01T15:04:05Z"`,
		} {
			var f entity.Fecha
			require.NoError(t, json.Unmarshal([]byte(payload), &f), "payload %s", payload)
			assert.Equal(t, "2024-05-01", f.DiaISO())
		}
	})

	t.Run("null deja la fecha en cero", func(t *testing.T) {
		var f entity.Fecha
		require.NoError(t, json.Unmarshal([]byte("null"), &f))
		assert.True(t, f.IsZero())
	})
}
