package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo guarda la cartera de pedidos como un único documento JSON (usable con pool o tx).
type OrderRepo struct {
	docs *DocumentStore
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{docs: NewDocumentStore(q)}
}

// LoadAll lee la colección completa. Sin documento → colección vacía.
func (r *OrderRepo) LoadAll(ctx context.Context) ([]entity.Order, error) {
	body, ok, err := r.docs.Get(ctx, repository.OrdersDocumentKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []entity.Order{}, nil
	}
	var orders []entity.Order
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("decodificar pedidos: %w", err)
	}
	return orders, nil
}

// SaveAll reescribe la colección completa.
func (r *OrderRepo) SaveAll(ctx context.Context, orders []entity.Order) error {
	if orders == nil {
		orders = []entity.Order{}
	}
	body, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("codificar pedidos: %w", err)
	}
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.Amount)
	}
	return r.docs.Put(ctx, repository.OrdersDocumentKey, body, len(orders), total)
}
