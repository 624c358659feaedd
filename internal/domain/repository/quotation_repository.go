package repository

import (
	"context"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// QuotationsDocumentKey clave fija del documento con los mapas de cotización.
const QuotationsDocumentKey = "supply_quotations_list"

// QuotationRepository puerto de persistencia de la colección completa de mapas de cotización.
type QuotationRepository interface {
	LoadAll(ctx context.Context) ([]entity.QuotationMap, error)
	SaveAll(ctx context.Context, maps []entity.QuotationMap) error
}

// TxRunner ejecuta fn con repositorios atados a una misma transacción.
// Si fn devuelve error no se persiste ningún cambio.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders OrderRepository, quotations QuotationRepository) error) error
}
