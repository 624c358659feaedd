// Package export genera los documentos PDF del tablero.
package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/application/ports"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/internal/domain/order"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
)

// PDFUseCase carga los datos y delega la maquetación al generador.
type PDFUseCase struct {
	orders     repository.OrderRepository
	quotations repository.QuotationRepository
	generator  ports.PDFGenerator
	now        func() time.Time
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(orders repository.OrderRepository, quotations repository.QuotationRepository, generator ports.PDFGenerator) *PDFUseCase {
	return &PDFUseCase{orders: orders, quotations: quotations, generator: generator, now: time.Now}
}

// OrderPDF ficha de un pedido. Retorna (bytes, nombre de archivo) o domain.ErrNotFound.
func (uc *PDFUseCase) OrderPDF(ctx context.Context, id string) ([]byte, string, error) {
	all, err := uc.orders.LoadAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: listar pedidos: %w", err)
	}
	for _, o := range all {
		if o.ID != id {
			continue
		}
		b, err := uc.generator.OrderPDF(ctx, o)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
		}
		return b, "PEDIDO_" + safeName(o.SolicitationNo) + ".pdf", nil
	}
	return nil, "", domain.ErrNotFound
}

// OrderFlowPDF relatório de fluxo con el mismo filtro del listado.
func (uc *PDFUseCase) OrderFlowPDF(ctx context.Context, q dto.OrderListQuery) ([]byte, string, error) {
	f, err := order.ParseFilter(q.Archived, q.Search, q.Status, q.Priority)
	if err != nil {
		return nil, "", err
	}
	all, err := uc.orders.LoadAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: listar pedidos: %w", err)
	}
	now := uc.now()
	b, err := uc.generator.OrderFlowPDF(ctx, f.Apply(all), now)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return b, fmt.Sprintf("FLUXO_%d.pdf", now.Unix()), nil
}

// QuotationMapPDF mapa de cotización completo.
func (uc *PDFUseCase) QuotationMapPDF(ctx context.Context, id string) ([]byte, string, error) {
	all, err := uc.quotations.LoadAll(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: listar mapas: %w", err)
	}
	for _, m := range all {
		if m.ID != id {
			continue
		}
		if len(m.Items) == 0 {
			return nil, "", fmt.Errorf("%w: mapa sem itens", domain.ErrInvalidInput)
		}
		b, err := uc.generator.QuotationMapPDF(ctx, m)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
		}
		return b, "MAPA_" + safeName(m.ID) + ".pdf", nil
	}
	return nil, "", domain.ErrNotFound
}

// safeName deja solo caracteres seguros para Content-Disposition.
func safeName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
