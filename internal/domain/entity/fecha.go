package entity

import (
	"fmt"
	"strings"
	"time"
)

// Formatos de fecha que maneja el backend de ventas.
// El backend serializa LocalDateTime sin zona; los formularios envían solo el día.
const (
	FormatoFechaHora = "2006-01-02T15:04:05"
	FormatoFecha     = "2006-01-02"
)

// Fecha envuelve time.Time para tolerar los formatos del backend:
// "2006-01-02T15:04:05" (LocalDateTime), "2006-01-02" y RFC 3339 con zona.
// Siempre se serializa como LocalDateTime a medianoche si no trae hora.
type Fecha struct {
	time.Time
}

// NuevaFecha construye una Fecha a partir de un time.Time.
func NuevaFecha(t time.Time) Fecha {
	return Fecha{Time: t}
}

// ParseFecha interpreta una cadena de fecha en cualquiera de los formatos aceptados.
func ParseFecha(s string) (Fecha, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{FormatoFechaHora, FormatoFecha, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return Fecha{Time: t}, nil
		}
	}
	return Fecha{}, fmt.Errorf("fecha no reconocida: %q", s)
}

// Dia devuelve la fecha truncada al día (hora cero, misma ubicación).
func (f Fecha) Dia() time.Time {
	return time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, f.Location())
}

// DiaISO devuelve la fecha en formato YYYY-MM-DD.
func (f Fecha) DiaISO() string {
	return f.Format(FormatoFecha)
}

// UnmarshalJSON acepta los tres formatos; un valor null o vacío deja la fecha en cero.
func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	f.Time = parsed.Time
	return nil
}

// MarshalJSON serializa como LocalDateTime ("2006-01-02T15:04:05"), el formato
// que espera el backend.
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(FormatoFechaHora) + `"`), nil
}
