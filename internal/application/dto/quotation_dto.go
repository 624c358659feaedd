package dto

import (
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateQuotationRequest cuerpo opcional de POST /api/quotations.
type CreateQuotationRequest struct {
	Requester string `json:"solicitante"`
}

// QuotationHeaderRequest cuerpo de PATCH /api/quotations/:id. Campos ausentes no cambian.
type QuotationHeaderRequest struct {
	Title            *string      `json:"titulo"`
	Requester        *string      `json:"solicitante"`
	Department       *string      `json:"departamento"`
	Status           *string      `json:"status"`
	EquipmentTag     *string      `json:"tag_equipamento"`
	DeliveryDeadline *entity.Date `json:"prazo_entrega"`
}

// QuotationItemRequest cuerpo de PATCH /api/quotations/:id/items/:itemId.
type QuotationItemRequest struct {
	Description *string `json:"descricao"`
	PartNumber  *string `json:"part_number"`
	Unit        *string `json:"unidade"`
	Quantity    *Number `json:"quantidade"`
}

// SupplierQuoteRequest cuerpo de PATCH /api/quotations/:id/items/:itemId/suppliers/:supplierId.
type SupplierQuoteRequest struct {
	Brand     *string `json:"marca"`
	UnitPrice *Number `json:"valor_unit"`
	Difal     *Number `json:"difal"`
}

// RenameSupplierRequest cuerpo de PATCH /api/quotations/:id/suppliers/:supplierId.
type RenameSupplierRequest struct {
	Name string `json:"nome"`
}

// RecalculateItemRequest ítem a recalcular sin persistir.
type RecalculateItemRequest struct {
	ID        string               `json:"id"`
	Quantity  Number               `json:"quantidade"`
	Suppliers []SupplierQuoteInput `json:"fornecedores"`
}

// SupplierQuoteInput proveedor de un ítem enviado por el cliente.
type SupplierQuoteInput struct {
	ID        string `json:"id"`
	Name      string `json:"nome"`
	Brand     string `json:"marca"`
	UnitPrice Number `json:"valor_unit"`
	Difal     Number `json:"difal"`
}

// QuotationMapResponse mapa completo más el total de mejores precios.
type QuotationMapResponse struct {
	entity.QuotationMap
	GrandTotal decimal.Decimal `json:"valor_total"`
}

// QuotationSummaryDTO fila del listado de mapas.
type QuotationSummaryDTO struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"titulo"`
	Date          entity.Date            `json:"data"`
	Requester     string                 `json:"solicitante"`
	Status        entity.QuotationStatus `json:"status"`
	ItemCount     int                    `json:"itens"`
	SupplierCount int                    `json:"fornecedores"`
	GrandTotal    decimal.Decimal        `json:"valor_total"`
}
