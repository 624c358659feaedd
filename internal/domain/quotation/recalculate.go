// Package quotation contiene el motor de recálculo del mapa de cotización y las operaciones
// que mantienen el conjunto de proveedores sincronizado entre ítems.
//
// Todas las funciones son puras: reciben un valor y devuelven uno nuevo, nunca modifican la entrada.
package quotation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// WinnerSeparator une los nombres de proveedores empatados.
const WinnerSeparator = " / "

var hundred = decimal.NewFromInt(100)

// Recalculate recalcula el total de cada proveedor (cantidad × unitario + DIFAL) y determina
// el menor total positivo y el/los ganadores.
//
// Un proveedor con unitario ≤ 0 queda con total 0 y nunca gana. Los empates se resuelven por
// igualdad exacta sobre el valor redondeado a centavos; los nombres se unen en el orden de la lista.
func Recalculate(item entity.QuotationItem) entity.QuotationItem {
	out := item.Clone()
	qty := decimal.NewFromInt(int64(item.Quantity))

	for i, s := range out.Suppliers {
		out.Suppliers[i].Total = supplierTotal(qty, s.UnitPrice, s.Difal)
	}

	lowest := decimal.Zero
	found := false
	for _, s := range out.Suppliers {
		if !s.Total.IsPositive() {
			continue
		}
		if !found || s.Total.LessThan(lowest) {
			lowest = s.Total
			found = true
		}
	}

	var winners []string
	if found {
		for _, s := range out.Suppliers {
			if s.Total.IsPositive() && s.Total.Equal(lowest) {
				winners = append(winners, s.Name)
			}
		}
	}

	out.LowestTotal = lowest
	out.Winner = strings.Join(winners, WinnerSeparator)
	return out
}

// supplierTotal subtotal + subtotal × DIFAL/100, redondeado a 2 decimales (half away from zero).
func supplierTotal(qty, unitPrice, difal decimal.Decimal) decimal.Decimal {
	if !unitPrice.IsPositive() {
		return decimal.Zero
	}
	subtotal := qty.Mul(unitPrice)
	return subtotal.Add(subtotal.Mul(difal).Div(hundred)).Round(2)
}

// RecalculateAll re-deriva todos los ítems del mapa.
func RecalculateAll(m entity.QuotationMap) entity.QuotationMap {
	out := m
	out.Items = make([]entity.QuotationItem, len(m.Items))
	for i, it := range m.Items {
		out.Items[i] = Recalculate(it)
	}
	return out
}

// IsWinner indica si el proveedor está entre los ganadores del ítem.
func IsWinner(item entity.QuotationItem, s entity.SupplierQuote) bool {
	return s.Total.IsPositive() && s.Total.Equal(item.LowestTotal)
}

// GrandTotal suma de los menores valores de cada ítem ("melhores preços").
func GrandTotal(m entity.QuotationMap) decimal.Decimal {
	total := decimal.Zero
	for _, it := range m.Items {
		total = total.Add(it.LowestTotal)
	}
	return total
}
