package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/application/usecase"
)

// QuotationHandler endpoints de mapas de cotización.
// Toda mutación devuelve el mapa completo ya recalculado.
type QuotationHandler struct {
	uc *usecase.QuotationUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *usecase.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

func (h *QuotationHandler) respond(c *fiber.Ctx, status int, out *dto.QuotationMapResponse, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(status).JSON(out)
}

// Create godoc
// @Summary      Nuevo mapa de cotización
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateQuotationRequest  false  "Solicitante"
// @Success      201   {object}  dto.QuotationMapResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateQuotationRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.Create(c.UserContext(), GetOperator(c), in)
	return h.respond(c, fiber.StatusCreated, out, err)
}

// List godoc
// @Summary      Listar mapas de cotización
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.QuotationSummaryDTO
// @Router       /api/quotations [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener mapa de cotización
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del mapa"
// @Success      200  {object}  dto.QuotationMapResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [get]
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// UpdateHeader godoc
// @Summary      Editar cabecera del mapa
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del mapa"
// @Param        body  body  dto.QuotationHeaderRequest  true  "Campos a alterar"
// @Success      200   {object}  dto.QuotationMapResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [patch]
func (h *QuotationHandler) UpdateHeader(c *fiber.Ctx) error {
	var in dto.QuotationHeaderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateHeader(c.UserContext(), c.Params("id"), in)
	return h.respond(c, fiber.StatusOK, out, err)
}

// Delete godoc
// @Summary      Excluir mapa
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del mapa"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "mapa excluído"})
}

// AddItem godoc
// @Summary      Agregar ítem
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del mapa"
// @Success      200  {object}  dto.QuotationMapResponse
// @Router       /api/quotations/{id}/items [post]
func (h *QuotationHandler) AddItem(c *fiber.Ctx) error {
	out, err := h.uc.AddItem(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// RemoveItem godoc
// @Summary      Quitar ítem
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID del mapa"
// @Param        itemId  path  string  true  "ID del ítem"
// @Success      200     {object}  dto.QuotationMapResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/items/{itemId} [delete]
func (h *QuotationHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.UserContext(), c.Params("id"), c.Params("itemId"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// UpdateItem godoc
// @Summary      Editar ítem
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del mapa"
// @Param        itemId  path  string  true  "ID del ítem"
// @Param        body    body  dto.QuotationItemRequest  true  "Campos a alterar"
// @Success      200     {object}  dto.QuotationMapResponse
// @Router       /api/quotations/{id}/items/{itemId} [patch]
func (h *QuotationHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.QuotationItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateItem(c.UserContext(), c.Params("id"), c.Params("itemId"), in)
	return h.respond(c, fiber.StatusOK, out, err)
}

// SetSupplierQuote godoc
// @Summary      Editar cotización de un proveedor en un ítem
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id          path  string  true  "ID del mapa"
// @Param        itemId      path  string  true  "ID del ítem"
// @Param        supplierId  path  string  true  "ID del proveedor"
// @Param        body        body  dto.SupplierQuoteRequest  true  "marca, valor_unit, difal"
// @Success      200         {object}  dto.QuotationMapResponse
// @Router       /api/quotations/{id}/items/{itemId}/suppliers/{supplierId} [patch]
func (h *QuotationHandler) SetSupplierQuote(c *fiber.Ctx) error {
	var in dto.SupplierQuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.SetSupplierQuote(c.UserContext(), c.Params("id"), c.Params("itemId"), c.Params("supplierId"), in)
	return h.respond(c, fiber.StatusOK, out, err)
}

// AddSupplier godoc
// @Summary      Agregar proveedor a todos los ítems
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del mapa"
// @Success      200  {object}  dto.QuotationMapResponse
// @Router       /api/quotations/{id}/suppliers [post]
func (h *QuotationHandler) AddSupplier(c *fiber.Ctx) error {
	out, err := h.uc.AddSupplier(c.UserContext(), c.Params("id"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// RemoveSupplier godoc
// @Summary      Quitar proveedor de todos los ítems
// @Tags         quotations
// @Security     Bearer
// @Produce      json
// @Param        id          path  string  true  "ID del mapa"
// @Param        supplierId  path  string  true  "ID del proveedor"
// @Success      200         {object}  dto.QuotationMapResponse
// @Failure      409         {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/suppliers/{supplierId} [delete]
func (h *QuotationHandler) RemoveSupplier(c *fiber.Ctx) error {
	out, err := h.uc.RemoveSupplier(c.UserContext(), c.Params("id"), c.Params("supplierId"))
	return h.respond(c, fiber.StatusOK, out, err)
}

// RenameSupplier godoc
// @Summary      Renombrar proveedor
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id          path  string  true  "ID del mapa"
// @Param        supplierId  path  string  true  "ID del proveedor"
// @Param        body        body  dto.RenameSupplierRequest  true  "nome"
// @Success      200         {object}  dto.QuotationMapResponse
// @Router       /api/quotations/{id}/suppliers/{supplierId} [patch]
func (h *QuotationHandler) RenameSupplier(c *fiber.Ctx) error {
	var in dto.RenameSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RenameSupplier(c.UserContext(), c.Params("id"), c.Params("supplierId"), in)
	return h.respond(c, fiber.StatusOK, out, err)
}

// RecalculateItem godoc
// @Summary      Recalcular ítem sin persistir
// @Tags         quotations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecalculateItemRequest  true  "Ítem"
// @Success      200   {object}  entity.QuotationItem
// @Router       /api/quotations/recalculate [post]
func (h *QuotationHandler) RecalculateItem(c *fiber.Ctx) error {
	var in dto.RecalculateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.RecalculateItem(in))
}
