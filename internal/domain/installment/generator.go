// Package installment genera y edita el cronograma de parcelas de un pedido.
package installment

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// MaxCount límite de parcelas por pedido (30 años mensuales).
const MaxCount = 360

// Generate divide total en count parcelas mensuales a partir de start.
//
// Cada parcela vale round(total/count, 2) salvo la última, que absorbe el resto
// (total − base × (count−1)); la suma es exactamente total. Vencimientos: start + i meses.
// Si el redondeo dejara la última negativa (totales de centavos en muchas parcelas) la base
// se trunca al centavo. count fuera de [1, MaxCount] no se valida aquí: devuelve un cronograma vacío.
func Generate(total decimal.Decimal, count int, start entity.Date) []entity.Installment {
	if count < 1 || count > MaxCount {
		return nil
	}
	n := decimal.NewFromInt(int64(count))
	rest := decimal.NewFromInt(int64(count - 1))
	base := total.Div(n).Round(2)
	last := total.Sub(base.Mul(rest))
	if last.Sign() != total.Sign() && !last.IsZero() {
		base = total.Div(n).Truncate(2)
		last = total.Sub(base.Mul(rest))
	}

	list := make([]entity.Installment, count)
	for i := range list {
		amount := base
		if i == count-1 {
			amount = last
		}
		list[i] = entity.Installment{
			Number:  i + 1,
			DueDate: start.AddMonths(i),
			Amount:  amount,
			Paid:    false,
		}
	}
	return list
}

// Sum suma los valores de las parcelas.
func Sum(list []entity.Installment) decimal.Decimal {
	total := decimal.Zero
	for _, in := range list {
		total = total.Add(in.Amount)
	}
	return total
}

// Renumber reasigna los números 1-based según la posición.
func Renumber(list []entity.Installment) []entity.Installment {
	out := append([]entity.Installment(nil), list...)
	for i := range out {
		out[i].Number = i + 1
	}
	return out
}
