package entity

import "github.com/shopspring/decimal"

// QuotationStatus estado de aprobación de un mapa de cotización.
type QuotationStatus string

const (
	QuotationStatusPendente   QuotationStatus = "PENDENTE"
	QuotationStatusAguardando QuotationStatus = "AGUARDANDO AP."
	QuotationStatusAprovado   QuotationStatus = "APROVADO"
	QuotationStatusReprovado  QuotationStatus = "REPROVADO"
)

// QuotationStatuses orden en que se muestran los estados.
var QuotationStatuses = []QuotationStatus{
	QuotationStatusPendente, QuotationStatusAguardando, QuotationStatusAprovado, QuotationStatusReprovado,
}

// IsValidQuotationStatus valida la enumeración.
func IsValidQuotationStatus(s QuotationStatus) bool {
	for _, v := range QuotationStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// QuotationMap planilla comparativa de precios entre proveedores.
// El conjunto de proveedores se comparte por posición/ID entre todos los ítems.
type QuotationMap struct {
	ID               string          `json:"id"`
	Title            string          `json:"titulo"`
	Date             Date            `json:"data"`
	Requester        string          `json:"solicitante"`
	Department       string          `json:"departamento"`
	Status           QuotationStatus `json:"status"`
	EquipmentTag     string          `json:"tag_equipamento"`
	DeliveryDeadline Date            `json:"prazo_entrega"`
	Items            []QuotationItem `json:"itens"`
}

// QuotationItem material o línea que se cotiza. LowestTotal y Winner son derivados.
type QuotationItem struct {
	ID          string          `json:"id"`
	Code        string          `json:"codigo"`
	PartNumber  string          `json:"part_number"`
	Description string          `json:"descricao"`
	Unit        string          `json:"unidade"`
	Quantity    int             `json:"quantidade"`
	Suppliers   []SupplierQuote `json:"fornecedores"`
	LowestTotal decimal.Decimal `json:"menor_valor"`
	Winner      string          `json:"vencedor"`
}

// SupplierQuote precio de un proveedor para un ítem. Total es derivado.
type SupplierQuote struct {
	ID        string          `json:"id"`
	Name      string          `json:"nome"`
	Brand     string          `json:"marca"`
	UnitPrice decimal.Decimal `json:"valor_unit"`
	Difal     decimal.Decimal `json:"difal"` // recargo porcentual
	Total     decimal.Decimal `json:"total"`
}

// Clone copia profunda del mapa (ítems y proveedores).
func (m QuotationMap) Clone() QuotationMap {
	items := make([]QuotationItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = it.Clone()
	}
	m.Items = items
	return m
}

// Clone copia el ítem y su slice de proveedores.
func (it QuotationItem) Clone() QuotationItem {
	it.Suppliers = append([]SupplierQuote(nil), it.Suppliers...)
	return it
}

// SupplierCount cantidad de columnas de proveedor (tomada del primer ítem).
func (m QuotationMap) SupplierCount() int {
	if len(m.Items) == 0 {
		return 0
	}
	return len(m.Items[0].Suppliers)
}

// ItemIndex posición del ítem o -1.
func (m QuotationMap) ItemIndex(itemID string) int {
	for i, it := range m.Items {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}
