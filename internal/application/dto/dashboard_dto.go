package dto

import (
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary (pedidos no archivados).
type DashboardSummaryDTO struct {
	ProvisionedTotal decimal.Decimal `json:"provisionado"`     // suma de valores
	OutstandingTotal decimal.Decimal `json:"em_aberto"`        // parcelas no pagadas
	UrgentCount      int             `json:"criticos"`         // prioridad URGENTE
	PendingNFCount   int             `json:"nf_pendentes"`     // status distinto de NF RECEBIDA
	FlowCount        int             `json:"fluxo"`            // pedidos activos
	TopSuppliers     []SupplierTotal `json:"top_fornecedores"` // primeros 5 proveedores en orden de aparición
}

// SupplierTotal valor acumulado por proveedor.
type SupplierTotal struct {
	Supplier string          `json:"fornecedor"`
	Total    decimal.Decimal `json:"total"`
}

// ReportsDTO respuesta de GET /api/reports.
type ReportsDTO struct {
	SolicitationCount int                `json:"solicitacoes"` // SC informada
	PurchaseCount     int                `json:"pedidos"`      // PD informado
	InvoiceCount      int                `json:"nfs_recebidas"`
	PendingCount      int                `json:"pendentes"`
	CancelledCount    int                `json:"cancelados"`
	TotalAmount       decimal.Decimal    `json:"valor_total"`
	ByStatus          []StatusCount      `json:"por_status"`
	Quotations        QuotationReportDTO `json:"cotacoes"`
}

// StatusCount conteo por status de pedido.
type StatusCount struct {
	Status entity.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

// QuotationReportDTO resumen de los mapas de cotización.
type QuotationReportDTO struct {
	Count      int                            `json:"count"`
	ByStatus   map[entity.QuotationStatus]int `json:"por_status"`
	BestPrices decimal.Decimal                `json:"melhores_precos"`
}
