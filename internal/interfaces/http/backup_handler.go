package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/application/usecase"
)

// BackupHandler exportación y restauración de ambas colecciones.
type BackupHandler struct {
	uc *usecase.BackupUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *usecase.BackupUseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar backup
// @Tags         backup
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackupDTO
// @Router       /api/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	out, err := h.uc.Export(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Restore godoc
// @Summary      Restaurar backup (reemplaza ambas colecciones)
// @Tags         backup
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupDTO  true  "Backup"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/backup [put]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	var in dto.BackupDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Restore(c.UserContext(), in); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "backup restaurado"})
}
