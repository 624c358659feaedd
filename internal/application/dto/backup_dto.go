package dto

import (
	"time"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// BackupDTO copia completa de ambas colecciones (GET/PUT /api/backup).
type BackupDTO struct {
	ExportedAt time.Time             `json:"exported_at"`
	Orders     []entity.Order        `json:"supply_orders"`
	Quotations []entity.QuotationMap `json:"supply_quotations_list"`
}
