package repository

import (
	"context"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// OrdersDocumentKey clave fija del documento con la cartera de pedidos.
const OrdersDocumentKey = "supply_orders"

// OrderRepository puerto de persistencia de la colección completa de pedidos.
// La colección se lee y se reescribe entera en cada cambio confirmado.
type OrderRepository interface {
	LoadAll(ctx context.Context) ([]entity.Order, error)
	SaveAll(ctx context.Context, orders []entity.Order) error
}
