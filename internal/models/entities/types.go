package entities

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// FechaLayout is the wire format for all date columns.
const FechaLayout = "2006-01-02"

// HoraLayout is the wire format for all time-of-day columns.
const HoraLayout = "15:04"

// Fecha is a date-only value serialized as YYYY-MM-DD both in JSON and in
// the database.
type Fecha struct {
	time.Time
}

// NuevaFecha builds a Fecha truncated to the day.
func NuevaFecha(t time.Time) Fecha {
	return Fecha{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseFecha parses the YYYY-MM-DD wire format.
func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse(FechaLayout, strings.TrimSpace(s))
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida: %s", s)
	}
	return Fecha{t}, nil
}

func (f Fecha) String() string {
	return f.Format(FechaLayout)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.Format(FechaLayout) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Value implements driver.Valuer so GORM stores the underlying time.
func (f Fecha) Value() (driver.Value, error) {
	return f.Time, nil
}

// Scan implements sql.Scanner.
func (f *Fecha) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*f = NuevaFecha(v)
		return nil
	case string:
		parsed, err := ParseFecha(v)
		if err != nil {
			// SQLite may hand back full timestamps.
			t, terr := time.Parse(time.RFC3339, v)
			if terr != nil {
				return err
			}
			parsed = NuevaFecha(t)
		}
		*f = parsed
		return nil
	case []byte:
		return f.Scan(string(v))
	case nil:
		*f = Fecha{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Fecha", src)
	}
}

// Hora is an HH:MM time-of-day value stored as text.
type Hora string

// ParseHora validates the HH:MM wire format.
func ParseHora(s string) (Hora, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(HoraLayout, s); err != nil {
		return "", fmt.Errorf("hora inválida: %s", s)
	}
	return Hora(s), nil
}
