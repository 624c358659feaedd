package pdf

import (
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// money formata em reais com separadores pt-BR. Ej: 1234.5 → "R$ 1.234,50".
func money(d decimal.Decimal) string {
	return "R$ " + ptBR.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// percent formata o DIFAL sem casas supérfluas. Ej: 12 → "12%", 7.5 → "7,5%".
func percent(d decimal.Decimal) string {
	return ptBR.Sprintf("%v", d.InexactFloat64()) + "%"
}

// date dd/mm/aaaa; fallback quando a data não foi informada.
func date(d entity.Date, fallback string) string {
	if d.IsZero() {
		return fallback
	}
	return d.Format("02/01/2006")
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
