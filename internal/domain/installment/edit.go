package installment

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// Patch campos editables de una parcela. nil = sin cambio.
type Patch struct {
	DueDate *entity.Date
	Amount  *decimal.Decimal
	Paid    *bool
}

// Update edita la parcela number (1-based) del pedido y devuelve el pedido nuevo.
// Si cambia el valor, el total del pedido pasa a ser la suma de las parcelas.
// Las ediciones directas pueden romper el invariante suma = total del lote original; se acepta.
func Update(o entity.Order, number int, patch Patch) (entity.Order, bool) {
	idx := -1
	for i, in := range o.Installments {
		if in.Number == number {
			idx = i
			break
		}
	}
	if idx < 0 {
		return o, false
	}
	out := o.Clone()
	in := out.Installments[idx]
	if patch.DueDate != nil {
		in.DueDate = *patch.DueDate
	}
	if patch.Paid != nil {
		in.Paid = *patch.Paid
	}
	if patch.Amount != nil {
		in.Amount = *patch.Amount
	}
	out.Installments[idx] = in
	if patch.Amount != nil {
		out.Amount = Sum(out.Installments).Round(2)
	}
	return out, true
}

// Outstanding suma de las parcelas no pagadas.
func Outstanding(list []entity.Installment) decimal.Decimal {
	total := decimal.Zero
	for _, in := range list {
		if !in.Paid {
			total = total.Add(in.Amount)
		}
	}
	return total
}
