package quotation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// Valores por defecto de un mapa nuevo.
const (
	DefaultTitle         = "NOVA COTAÇÃO DE MATERIAIS"
	DefaultDepartment    = "SUPRIMENTOS"
	DefaultUnit          = "UN"
	DefaultSupplierCount = 3
)

var upperCaser = cases.Upper(language.BrazilianPortuguese)

func upper(s string) string {
	return upperCaser.String(s)
}

// ItemCode código secuencial de 3 dígitos ("001", "002", ...).
func ItemCode(n int) string {
	return fmt.Sprintf("%03d", n)
}

// NewMap construye un mapa con un ítem vacío y tres proveedores genéricos.
func NewMap(id string, today entity.Date, requester string, newID IDFunc) entity.QuotationMap {
	suppliers := make([]entity.SupplierQuote, DefaultSupplierCount)
	for i := range suppliers {
		suppliers[i] = entity.SupplierQuote{
			ID:        newID(),
			Name:      DefaultSupplierName(i + 1),
			UnitPrice: decimal.Zero,
			Difal:     decimal.Zero,
			Total:     decimal.Zero,
		}
	}
	item := entity.QuotationItem{
		ID:        newID(),
		Code:      ItemCode(1),
		Unit:      DefaultUnit,
		Quantity:  1,
		Suppliers: suppliers,
	}
	return entity.QuotationMap{
		ID:         id,
		Title:      DefaultTitle,
		Date:       today,
		Requester:  requester,
		Department: DefaultDepartment,
		Status:     entity.QuotationStatusPendente,
		Items:      []entity.QuotationItem{Recalculate(item)},
	}
}

// AddItem agrega un ítem al final copiando IDs y nombres de proveedores del primer ítem (precios en cero).
func AddItem(m entity.QuotationMap, newID IDFunc) entity.QuotationMap {
	var suppliers []entity.SupplierQuote
	if len(m.Items) > 0 {
		for _, s := range m.Items[0].Suppliers {
			suppliers = append(suppliers, entity.SupplierQuote{
				ID:        s.ID,
				Name:      s.Name,
				UnitPrice: decimal.Zero,
				Difal:     decimal.Zero,
				Total:     decimal.Zero,
			})
		}
	}
	item := Recalculate(entity.QuotationItem{
		ID:        newID(),
		Code:      ItemCode(len(m.Items) + 1),
		Unit:      DefaultUnit,
		Quantity:  1,
		Suppliers: suppliers,
	})
	out := m
	out.Items = append(append([]entity.QuotationItem(nil), m.Items...), item)
	return out
}

// RemoveItem quita un ítem. No se permite quitar el último: devuelve false sin cambios.
func RemoveItem(m entity.QuotationMap, itemID string) (entity.QuotationMap, bool) {
	idx := m.ItemIndex(itemID)
	if idx < 0 || len(m.Items) <= 1 {
		return m, false
	}
	out := m
	out.Items = make([]entity.QuotationItem, 0, len(m.Items)-1)
	out.Items = append(out.Items, m.Items[:idx]...)
	out.Items = append(out.Items, m.Items[idx+1:]...)
	return out, true
}

// ItemPatch campos editables de un ítem. nil = sin cambio.
type ItemPatch struct {
	Description *string
	PartNumber  *string
	Unit        *string
	Quantity    *int
}

// UpdateItem aplica el patch (textos en mayúsculas) y re-deriva el ítem.
func UpdateItem(m entity.QuotationMap, itemID string, patch ItemPatch) (entity.QuotationMap, bool) {
	idx := m.ItemIndex(itemID)
	if idx < 0 {
		return m, false
	}
	item := m.Items[idx].Clone()
	if patch.Description != nil {
		item.Description = upper(*patch.Description)
	}
	if patch.PartNumber != nil {
		item.PartNumber = upper(*patch.PartNumber)
	}
	if patch.Unit != nil {
		item.Unit = upper(*patch.Unit)
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	return replaceItem(m, idx, Recalculate(item)), true
}

// HeaderPatch campos de cabecera editables. nil = sin cambio.
type HeaderPatch struct {
	Title            *string
	Requester        *string
	Department       *string
	Status           *entity.QuotationStatus
	EquipmentTag     *string
	DeliveryDeadline *entity.Date
}

// UpdateHeader aplica el patch de cabecera. Los ítems no cambian.
func UpdateHeader(m entity.QuotationMap, patch HeaderPatch) entity.QuotationMap {
	out := m
	if patch.Title != nil {
		out.Title = upper(*patch.Title)
	}
	if patch.Requester != nil {
		out.Requester = upper(*patch.Requester)
	}
	if patch.Department != nil {
		out.Department = upper(*patch.Department)
	}
	if patch.Status != nil {
		out.Status = *patch.Status
	}
	if patch.EquipmentTag != nil {
		out.EquipmentTag = upper(*patch.EquipmentTag)
	}
	if patch.DeliveryDeadline != nil {
		out.DeliveryDeadline = *patch.DeliveryDeadline
	}
	return out
}

func replaceItem(m entity.QuotationMap, idx int, item entity.QuotationItem) entity.QuotationMap {
	out := m
	out.Items = append([]entity.QuotationItem(nil), m.Items...)
	out.Items[idx] = item
	return out
}
