package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout formato ISO usado en JSON y en el almacenamiento.
const DateLayout = "2006-01-02"

// Date fecha civil (sin hora). El valor cero significa "no informada" y se serializa como "".
type Date struct {
	t time.Time
}

// NewDate construye una fecha civil en UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf descarta la hora de t.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today devuelve la fecha local de hoy.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate interpreta "2006-01-02". Cadena vacía → fecha cero.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero indica que la fecha no fue informada.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Time devuelve la fecha como time.Time a medianoche UTC.
func (d Date) Time() time.Time { return d.t }

// Before compara dos fechas civiles.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// Equal compara dos fechas civiles.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// String formato ISO; "" para la fecha cero.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// Format usa el layout indicado; "" para la fecha cero.
func (d Date) Format(layout string) string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(layout)
}

// AddMonths avanza n meses conservando el día del mes, limitado al último día del mes destino
// (31/01 + 1 mes = 28/02 o 29/02).
func (d Date) AddMonths(n int) Date {
	if d.IsZero() {
		return d
	}
	y, m, day := d.t.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1).Day()
	if day > last {
		day = last
	}
	return NewDate(first.Year(), first.Month(), day)
}

// MarshalJSON serializa como "2006-01-02" o "".
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON acepta "2006-01-02", "" o null. También tolera un timestamp RFC 3339.
func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("data deve ser string: %w", err)
	}
	if len(s) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			*d = DateOf(t)
			return nil
		}
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
