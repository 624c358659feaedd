package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Suprimentos-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero y relatórios.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary indicadores del tablero sobre pedidos activos.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total provisionado, urgentes, NF pendientes, fluxo, top 5 fornecedores).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// GetReports godoc
// @Summary      Relatórios de pedidos y mapas de cotización
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *DashboardHandler) GetReports(c *fiber.Ctx) error {
	reports, err := h.uc.GetReports(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(reports)
}
