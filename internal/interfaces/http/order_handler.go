package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/application/usecase"
)

// OrderHandler endpoints de pedidos de compra y sus parcelas.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido
// @Description  Si lista_parcelas viene vacía se genera el cronograma desde valor, parcelas y vencimento_nf.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OrderRequest  true  "Datos del pedido"
// @Success      201   {object}  entity.Order
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetOperator(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del pedido"
// @Param        body  body  dto.OrderRequest  true  "Datos del pedido"
// @Success      200   {object}  entity.Order
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [put]
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var in dto.OrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetOperator(c), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        archived    query  bool    false  "Histórico (arquivados)"
// @Param        q           query  string  false  "Busca em fornecedor, SC, PD e NF"
// @Param        status      query  string  false  "Status"
// @Param        prioridade  query  string  false  "Prioridade"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var q dto.OrderListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ToggleArchive godoc
// @Summary      Arquivar / restaurar pedido
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/archive [post]
func (h *OrderHandler) ToggleArchive(c *fiber.Ctx) error {
	out, err := h.uc.ToggleArchive(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir pedido permanentemente
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id       path   string  true   "ID del pedido"
// @Param        confirm  query  bool    true   "Debe ser true"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      428  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id"), c.QueryBool("confirm")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido excluído"})
}

// UpdateInstallment godoc
// @Summary      Editar parcela
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del pedido"
// @Param        number  path  int     true  "Número da parcela"
// @Param        body    body  dto.InstallmentPatchRequest  true  "Campos a alterar"
// @Success      200     {object}  entity.Order
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/installments/{number} [patch]
func (h *OrderHandler) UpdateInstallment(c *fiber.Ctx) error {
	number, err := c.ParamsInt("number")
	if err != nil || number < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "número de parcela inválido"})
	}
	var in dto.InstallmentPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateInstallment(c.UserContext(), c.Params("id"), number, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PreviewInstallments godoc
// @Summary      Pré-visualizar cronograma de parcelas
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InstallmentPreviewRequest  true  "valor, parcelas, vencimento_nf"
// @Success      200   {object}  dto.InstallmentPreviewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders/installments/preview [post]
func (h *OrderHandler) PreviewInstallments(c *fiber.Ctx) error {
	var in dto.InstallmentPreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	res, err := h.uc.PreviewInstallments(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}
