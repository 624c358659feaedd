package entity

import "github.com/shopspring/decimal"

// Priority prioridad de un pedido de compra.
type Priority string

const (
	PriorityNormal  Priority = "NORMAL"
	PriorityAlta    Priority = "ALTA"
	PriorityUrgente Priority = "URGENTE"
)

// OrderStatus etapa del ciclo solicitação → pedido → nota fiscal.
type OrderStatus string

const (
	OrderStatusSolicitado    OrderStatus = "SOLICITADO"
	OrderStatusEmCotacao     OrderStatus = "EM COTAÇÃO"
	OrderStatusPedidoEmitido OrderStatus = "PEDIDO EMITIDO"
	OrderStatusNFRecebida    OrderStatus = "NF RECEBIDA"
	OrderStatusCancelado     OrderStatus = "CANCELADO"
)

// DelayStatusOnTime valor que el formulario graba en cada guardado.
const DelayStatusOnTime = "NO PRAZO"

// DefaultResponsible responsable por defecto cuando el token no trae operador.
const DefaultResponsible = "MAURICIO"

// Order representa un pedido de compra con su cronograma de pagos.
// Invariante (solo al crear): la suma de Installments es igual a Amount.
type Order struct {
	ID               string          `json:"id"`
	SolicitationNo   string          `json:"solicitacao_no"` // SC
	PurchaseOrderNo  string          `json:"pedido_no"`      // PD
	InvoiceNo        string          `json:"nf_no"`          // NF
	RequestDate      Date            `json:"data_solicitacao"`
	InvoiceDueDate   Date            `json:"vencimento_nf"` // fecha base de las parcelas
	ExpectedDelivery Date            `json:"previsao_entrega"`
	Supplier         string          `json:"fornecedor"`
	Amount           decimal.Decimal `json:"valor"`
	InstallmentCount int             `json:"parcelas"`
	Priority         Priority        `json:"prioridade"`
	Status           OrderStatus     `json:"status"`
	Responsible      string          `json:"responsavel"`
	Notes            string          `json:"observacoes"`
	Archived         bool            `json:"is_archived"`
	DelayStatus      string          `json:"status_atraso"`
	Installments     []Installment   `json:"lista_parcelas"`
}

// Installment una parcela del cronograma. Pertenece exclusivamente a su Order.
type Installment struct {
	Number  int             `json:"numero"`
	DueDate Date            `json:"vencimento"`
	Amount  decimal.Decimal `json:"valor"`
	Paid    bool            `json:"paga"`
}

// Clone copia el pedido incluyendo el slice de parcelas.
func (o Order) Clone() Order {
	o.Installments = append([]Installment(nil), o.Installments...)
	return o
}

// IsValidPriority valida la enumeración.
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityNormal, PriorityAlta, PriorityUrgente:
		return true
	}
	return false
}

// IsValidOrderStatus valida la enumeración.
func IsValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusSolicitado, OrderStatusEmCotacao, OrderStatusPedidoEmitido,
		OrderStatusNFRecebida, OrderStatusCancelado:
		return true
	}
	return false
}
