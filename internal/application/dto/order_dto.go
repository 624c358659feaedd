package dto

import (
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderRequest cuerpo de POST /api/orders y PUT /api/orders/:id.
// Si Installments viene informado se respeta tal cual (cronograma ya editado en el formulario);
// si no, al crear se genera desde Amount, InstallmentCount e InvoiceDueDate.
type OrderRequest struct {
	SolicitationNo   string             `json:"solicitacao_no"`
	PurchaseOrderNo  string             `json:"pedido_no"`
	InvoiceNo        string             `json:"nf_no"`
	RequestDate      entity.Date        `json:"data_solicitacao"`
	InvoiceDueDate   entity.Date        `json:"vencimento_nf"`
	ExpectedDelivery entity.Date        `json:"previsao_entrega"`
	Supplier         string             `json:"fornecedor"`
	Amount           Number             `json:"valor"`
	InstallmentCount Number             `json:"parcelas"`
	Priority         entity.Priority    `json:"prioridade"`
	Status           entity.OrderStatus `json:"status"`
	Responsible      string             `json:"responsavel"`
	Notes            string             `json:"observacoes"`
	Installments     []InstallmentInput `json:"lista_parcelas"`
}

// InstallmentInput parcela enviada por el formulario.
type InstallmentInput struct {
	Number  int         `json:"numero"`
	DueDate entity.Date `json:"vencimento"`
	Amount  Number      `json:"valor"`
	Paid    bool        `json:"paga"`
}

// InstallmentPatchRequest cuerpo de PATCH /api/orders/:id/installments/:number. Campos ausentes no cambian.
type InstallmentPatchRequest struct {
	DueDate *entity.Date `json:"vencimento"`
	Amount  *Number      `json:"valor"`
	Paid    *bool        `json:"paga"`
}

// InstallmentPreviewRequest cuerpo de POST /api/orders/installments/preview.
type InstallmentPreviewRequest struct {
	Amount Number      `json:"valor"`
	Count  Number      `json:"parcelas"`
	Start  entity.Date `json:"vencimento_nf"`
}

// InstallmentPreviewResponse cronograma calculado sin persistir.
type InstallmentPreviewResponse struct {
	Installments []entity.Installment `json:"lista_parcelas"`
	Total        decimal.Decimal      `json:"total"`
}

// OrderListQuery query string de GET /api/orders.
type OrderListQuery struct {
	Archived bool   `query:"archived"`
	Search   string `query:"q"`
	Status   string `query:"status"`
	Priority string `query:"prioridade"`
}

// OrderListResponse listado filtrado con el total provisionado.
type OrderListResponse struct {
	Items       []entity.Order  `json:"items"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"total_valor"`
}
