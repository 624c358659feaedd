package quotation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// IDFunc genera identificadores para ítems y proveedores nuevos.
type IDFunc func() string

// DefaultSupplierName nombre generado para la columna n (1-based).
func DefaultSupplierName(n int) string {
	return fmt.Sprintf("FORNECEDOR %d", n)
}

// AddSupplier agrega una columna de proveedor (precio cero, ID nuevo, nombre generado) a todos
// los ítems y re-deriva cada uno. El mapa de entrada no se modifica.
func AddSupplier(m entity.QuotationMap, newID IDFunc) entity.QuotationMap {
	supplier := entity.SupplierQuote{
		ID:        newID(),
		Name:      DefaultSupplierName(m.SupplierCount() + 1),
		UnitPrice: decimal.Zero,
		Difal:     decimal.Zero,
		Total:     decimal.Zero,
	}
	out := m
	out.Items = make([]entity.QuotationItem, len(m.Items))
	for i, it := range m.Items {
		next := it.Clone()
		next.Suppliers = append(next.Suppliers, supplier)
		out.Items[i] = Recalculate(next)
	}
	return out
}

// RemoveSupplier quita la columna con ese ID de todos los ítems y re-deriva cada uno.
// Devuelve false (y el mapa sin cambios) si quedaría menos de un proveedor.
func RemoveSupplier(m entity.QuotationMap, supplierID string) (entity.QuotationMap, bool) {
	if m.SupplierCount() <= 1 {
		return m, false
	}
	out := m
	out.Items = make([]entity.QuotationItem, len(m.Items))
	for i, it := range m.Items {
		next := it
		next.Suppliers = make([]entity.SupplierQuote, 0, len(it.Suppliers))
		for _, s := range it.Suppliers {
			if s.ID != supplierID {
				next.Suppliers = append(next.Suppliers, s)
			}
		}
		out.Items[i] = Recalculate(next)
	}
	return out, true
}

// RenameSupplier propaga el nuevo nombre a la columna en todos los ítems.
// La etiqueta de ganador se recalcula porque contiene el nombre.
func RenameSupplier(m entity.QuotationMap, supplierID, name string) (entity.QuotationMap, bool) {
	name = upper(name)
	found := false
	out := m
	out.Items = make([]entity.QuotationItem, len(m.Items))
	for i, it := range m.Items {
		next := it.Clone()
		for j := range next.Suppliers {
			if next.Suppliers[j].ID == supplierID {
				next.Suppliers[j].Name = name
				found = true
			}
		}
		out.Items[i] = Recalculate(next)
	}
	if !found {
		return m, false
	}
	return out, true
}

// SupplierQuotePatch campos editables de un proveedor en un ítem. nil = sin cambio.
type SupplierQuotePatch struct {
	Brand     *string
	UnitPrice *decimal.Decimal
	Difal     *decimal.Decimal
}

// SetSupplierQuote edita la cotización de un proveedor en un ítem y re-deriva ese ítem.
func SetSupplierQuote(m entity.QuotationMap, itemID, supplierID string, patch SupplierQuotePatch) (entity.QuotationMap, bool) {
	idx := m.ItemIndex(itemID)
	if idx < 0 {
		return m, false
	}
	item := m.Items[idx].Clone()
	found := false
	for j := range item.Suppliers {
		if item.Suppliers[j].ID != supplierID {
			continue
		}
		found = true
		if patch.Brand != nil {
			item.Suppliers[j].Brand = upper(*patch.Brand)
		}
		if patch.UnitPrice != nil {
			item.Suppliers[j].UnitPrice = *patch.UnitPrice
		}
		if patch.Difal != nil {
			item.Suppliers[j].Difal = *patch.Difal
		}
	}
	if !found {
		return m, false
	}
	return replaceItem(m, idx, Recalculate(item)), true
}
