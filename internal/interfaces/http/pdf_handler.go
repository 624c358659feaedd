package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/application/export"
)

// PDFHandler descarga de documentos PDF.
type PDFHandler struct {
	uc *export.PDFUseCase
}

// NewPDFHandler construye el handler.
func NewPDFHandler(uc *export.PDFUseCase) *PDFHandler {
	return &PDFHandler{uc: uc}
}

func sendPDF(c *fiber.Ctx, body []byte, filename string, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}

// OrderPDF godoc
// @Summary      PDF de un pedido
// @Tags         pdf
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/pdf [get]
func (h *PDFHandler) OrderPDF(c *fiber.Ctx) error {
	body, name, err := h.uc.OrderPDF(c.UserContext(), c.Params("id"))
	return sendPDF(c, body, name, err)
}

// OrderFlowPDF godoc
// @Summary      PDF del fluxo de pedidos (mismo filtro del listado)
// @Tags         pdf
// @Security     Bearer
// @Produce      application/pdf
// @Param        archived    query  bool    false  "Histórico"
// @Param        q           query  string  false  "Busca"
// @Param        status      query  string  false  "Status"
// @Param        prioridade  query  string  false  "Prioridade"
// @Success      200  {file}  binary
// @Router       /api/orders/pdf [get]
func (h *PDFHandler) OrderFlowPDF(c *fiber.Ctx) error {
	var q dto.OrderListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	body, name, err := h.uc.OrderFlowPDF(c.UserContext(), q)
	return sendPDF(c, body, name, err)
}

// QuotationMapPDF godoc
// @Summary      PDF del mapa de cotización
// @Tags         pdf
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del mapa"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/pdf [get]
func (h *PDFHandler) QuotationMapPDF(c *fiber.Ctx) error {
	body, name, err := h.uc.QuotationMapPDF(c.UserContext(), c.Params("id"))
	return sendPDF(c, body, name, err)
}
