package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// Number valor numérico tolerante de los formularios: acepta número JSON, string con punto o coma
// decimal, vacío o null. Lo que no se puede interpretar vale 0.
type Number struct {
	decimal.Decimal
}

// NewNumber construye un Number desde un string (misma coerción que el JSON).
func NewNumber(s string) Number {
	return Number{Decimal: parseLenient(s)}
}

// UnmarshalJSON nunca falla por contenido no numérico.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		n.Decimal = decimal.Zero
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			n.Decimal = decimal.Zero
			return nil
		}
		n.Decimal = parseLenient(s)
		return nil
	}
	n.Decimal = parseLenient(string(b))
	return nil
}

var (
	maxInt = decimal.NewFromInt(math.MaxInt32)
	minInt = decimal.NewFromInt(math.MinInt32)
)

// Int parte entera (cantidades), saturada al rango de int32.
func (n Number) Int() int {
	switch {
	case n.Decimal.GreaterThan(maxInt):
		return math.MaxInt32
	case n.Decimal.LessThan(minInt):
		return math.MinInt32
	}
	return int(n.Decimal.IntPart())
}

func parseLenient(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
		// 1.234,56 (pt-BR) → 1234.56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		// 1,234.56 → 1234.56
		s = strings.ReplaceAll(s, ",", "")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
