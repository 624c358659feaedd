package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suprimentos-api/internal/application/usecase"
)

// AIHandler endpoints de texto generado por IA. Nunca fallan por el proveedor:
// si el modelo no responde devuelven el texto de respaldo con fallback=true.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// SummarizeOrders godoc
// @Summary      Resumen ejecutivo de los pedidos activos
// @Description  Timeout interno de 30 s. Ante cualquier fallo responde "Resumo indisponível.".
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AITextResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/ai/orders/summary [post]
func (h *AIHandler) SummarizeOrders(c *fiber.Ctx) error {
	out, err := h.uc.SummarizeOrders(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AnalyzeQuotation godoc
// @Summary      Análisis técnico del mapa de cotización
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del mapa"
// @Success      200  {object}  dto.AITextResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ai/quotations/{id}/analysis [post]
func (h *AIHandler) AnalyzeQuotation(c *fiber.Ctx) error {
	out, err := h.uc.AnalyzeQuotation(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
