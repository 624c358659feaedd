package ports

import (
	"context"
	"time"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// PDFGenerator puerto de salida para los documentos imprimibles.
type PDFGenerator interface {
	// OrderPDF ficha de un pedido con su cronograma de pago.
	OrderPDF(ctx context.Context, order entity.Order) ([]byte, error)
	// OrderFlowPDF listado (relatório de fluxo) de los pedidos dados, en ese orden.
	OrderFlowPDF(ctx context.Context, orders []entity.Order, generatedAt time.Time) ([]byte, error)
	// QuotationMapPDF mapa de cotización con columnas por proveedor y total de mejores precios.
	QuotationMapPDF(ctx context.Context, m entity.QuotationMap) ([]byte, error)
}
