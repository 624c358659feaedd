// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa con STORAGE_DRIVER=memory y en tests; los datos se pierden al reiniciar.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
)

var (
	_ repository.TxRunner            = (*Store)(nil)
	_ repository.OrderRepository     = (*orderRepo)(nil)
	_ repository.QuotationRepository = (*quotationRepo)(nil)
)

// Store guarda las dos colecciones. Las transacciones trabajan sobre una copia y la publican
// solo si fn no devuelve error (copy-on-commit).
type Store struct {
	mu         sync.Mutex
	orders     []entity.Order
	quotations []entity.QuotationMap
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{}
}

// Orders repositorio de pedidos fuera de transacción.
func (s *Store) Orders() repository.OrderRepository {
	return &orderRepo{snap: nil, store: s}
}

// Quotations repositorio de mapas fuera de transacción.
func (s *Store) Quotations() repository.QuotationRepository {
	return &quotationRepo{snap: nil, store: s}
}

// Run serializa las transacciones con un mutex; los cambios se publican al final si fn no falla.
func (s *Store) Run(ctx context.Context, fn func(orders repository.OrderRepository, quotations repository.QuotationRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := &snapshot{
		orders:     cloneOrders(s.orders),
		quotations: cloneMaps(s.quotations),
	}
	if err := fn(&orderRepo{snap: snap}, &quotationRepo{snap: snap}); err != nil {
		return err
	}
	s.orders = snap.orders
	s.quotations = snap.quotations
	return nil
}

type snapshot struct {
	orders     []entity.Order
	quotations []entity.QuotationMap
}

type orderRepo struct {
	snap  *snapshot
	store *Store
}

func (r *orderRepo) LoadAll(ctx context.Context) ([]entity.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.snap != nil {
		return cloneOrders(r.snap.orders), nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return cloneOrders(r.store.orders), nil
}

func (r *orderRepo) SaveAll(ctx context.Context, orders []entity.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.snap != nil {
		r.snap.orders = cloneOrders(orders)
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.orders = cloneOrders(orders)
	return nil
}

type quotationRepo struct {
	snap  *snapshot
	store *Store
}

func (r *quotationRepo) LoadAll(ctx context.Context) ([]entity.QuotationMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.snap != nil {
		return cloneMaps(r.snap.quotations), nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return cloneMaps(r.store.quotations), nil
}

func (r *quotationRepo) SaveAll(ctx context.Context, maps []entity.QuotationMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.snap != nil {
		r.snap.quotations = cloneMaps(maps)
		return nil
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.quotations = cloneMaps(maps)
	return nil
}

func cloneOrders(in []entity.Order) []entity.Order {
	out := make([]entity.Order, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}

func cloneMaps(in []entity.QuotationMap) []entity.QuotationMap {
	out := make([]entity.QuotationMap, len(in))
	for i, m := range in {
		out[i] = m.Clone()
	}
	return out
}
