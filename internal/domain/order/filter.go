// Package order reglas de consulta sobre la cartera de pedidos.
package order

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

// Filter criterios de listado. Archived elige entre pedidos activos (false) e histórico (true).
type Filter struct {
	Archived bool
	Search   string
	Status   entity.OrderStatus
	Priority entity.Priority
}

// ParseFilter arma el filtro desde parámetros de consulta. Status y prioridad vacíos no filtran.
func ParseFilter(archived bool, search, status, priority string) (Filter, error) {
	f := Filter{Archived: archived, Search: search}
	if status != "" {
		s := entity.OrderStatus(strings.ToUpper(status))
		if !entity.IsValidOrderStatus(s) {
			return f, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
		}
		f.Status = s
	}
	if priority != "" {
		p := entity.Priority(strings.ToUpper(priority))
		if !entity.IsValidPriority(p) {
			return f, fmt.Errorf("%w: prioridade %q", domain.ErrInvalidInput, priority)
		}
		f.Priority = p
	}
	return f, nil
}

// Matches indica si el pedido cumple el filtro. La búsqueda de texto es insensible a mayúsculas
// sobre proveedor, SC, PD y NF.
func (f Filter) Matches(o entity.Order) bool {
	if o.Archived != f.Archived {
		return false
	}
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if f.Priority != "" && o.Priority != f.Priority {
		return false
	}
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	for _, field := range []string{o.Supplier, o.SolicitationNo, o.PurchaseOrderNo, o.InvoiceNo} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Apply devuelve los pedidos que cumplen el filtro, en el mismo orden.
func (f Filter) Apply(orders []entity.Order) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o) {
			out = append(out, o)
		}
	}
	return out
}

// Active pedidos no archivados.
func Active(orders []entity.Order) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if !o.Archived {
			out = append(out, o)
		}
	}
	return out
}

// HasReference indica si una referencia (SC/PD) fue informada. "---" y "000" cuentan como vacías.
func HasReference(ref string) bool {
	ref = strings.TrimSpace(ref)
	return ref != "" && ref != "---" && ref != "000"
}
