package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/domain/quotation"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo guarda los mapas de cotización como un único documento JSON (usable con pool o tx).
type QuotationRepo struct {
	docs *DocumentStore
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{docs: NewDocumentStore(q)}
}

// LoadAll lee la colección. Un documento antiguo con un solo mapa (objeto en vez de arreglo)
// se devuelve como lista de un elemento.
func (r *QuotationRepo) LoadAll(ctx context.Context) ([]entity.QuotationMap, error) {
	body, ok, err := r.docs.Get(ctx, repository.QuotationsDocumentKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entity.QuotationMap{}, nil
	}
	return decodeQuotations(body)
}

// SaveAll reescribe la colección completa. total_value guarda la suma de los mejores precios.
func (r *QuotationRepo) SaveAll(ctx context.Context, maps []entity.QuotationMap) error {
	if maps == nil {
		maps = []entity.QuotationMap{}
	}
	body, err := json.Marshal(maps)
	if err != nil {
		return fmt.Errorf("codificar mapas de cotización: %w", err)
	}
	total := decimal.Zero
	for _, m := range maps {
		total = total.Add(quotation.GrandTotal(m))
	}
	return r.docs.Put(ctx, repository.QuotationsDocumentKey, body, len(maps), total)
}

func decodeQuotations(body []byte) ([]entity.QuotationMap, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single entity.QuotationMap
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, fmt.Errorf("decodificar mapa de cotización: %w", err)
		}
		return []entity.QuotationMap{single}, nil
	}
	var maps []entity.QuotationMap
	if err := json.Unmarshal(trimmed, &maps); err != nil {
		return nil, fmt.Errorf("decodificar mapas de cotización: %w", err)
	}
	if maps == nil {
		maps = []entity.QuotationMap{}
	}
	return maps, nil
}
