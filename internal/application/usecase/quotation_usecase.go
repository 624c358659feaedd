package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/domain/quotation"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
)

// QuotationUseCase casos de uso de los mapas de cotización.
// Toda edición produce un mapa nuevo (funciones puras del paquete quotation) que se persiste
// en una sola transacción: nunca se observa un mapa a medio propagar.
type QuotationUseCase struct {
	quotations repository.QuotationRepository
	tx         repository.TxRunner
	newID      quotation.IDFunc
	newMapID   func() string
	today      func() entity.Date
}

// NewQuotationUseCase construye el caso de uso.
func NewQuotationUseCase(quotations repository.QuotationRepository, tx repository.TxRunner) *QuotationUseCase {
	return &QuotationUseCase{
		quotations: quotations,
		tx:         tx,
		newID:      func() string { return uuid.New().String() },
		newMapID:   func() string { return fmt.Sprintf("MAP-%d", 100000+rand.Intn(900000)) },
		today:      entity.Today,
	}
}

// Create agrega un mapa por defecto al inicio de la lista.
func (uc *QuotationUseCase) Create(ctx context.Context, operator string, in dto.CreateQuotationRequest) (*dto.QuotationMapResponse, error) {
	requester := strings.TrimSpace(in.Requester)
	if requester == "" {
		requester = operator
	}
	if requester == "" {
		requester = entity.DefaultResponsible
	}
	var created entity.QuotationMap
	err := uc.tx.Run(ctx, func(_ repository.OrderRepository, quotations repository.QuotationRepository) error {
		all, err := quotations.LoadAll(ctx)
		if err != nil {
			return err
		}
		id := uc.uniqueMapID(all)
		created = quotation.NewMap(id, uc.today(), strings.ToUpper(requester), uc.newID)
		return quotations.SaveAll(ctx, append([]entity.QuotationMap{created}, all...))
	})
	if err != nil {
		return nil, fmt.Errorf("crear mapa: %w", err)
	}
	return toMapResponse(created), nil
}

// List resumen de todos los mapas en el orden guardado.
func (uc *QuotationUseCase) List(ctx context.Context) ([]dto.QuotationSummaryDTO, error) {
	all, err := uc.quotations.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar mapas: %w", err)
	}
	out := make([]dto.QuotationSummaryDTO, 0, len(all))
	for _, m := range all {
		out = append(out, dto.QuotationSummaryDTO{
			ID:            m.ID,
			Title:         m.Title,
			Date:          m.Date,
			Requester:     m.Requester,
			Status:        m.Status,
			ItemCount:     len(m.Items),
			SupplierCount: m.SupplierCount(),
			GrandTotal:    quotation.GrandTotal(m),
		})
	}
	return out, nil
}

// GetByID devuelve el mapa completo o domain.ErrNotFound.
func (uc *QuotationUseCase) GetByID(ctx context.Context, id string) (*dto.QuotationMapResponse, error) {
	m, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMapResponse(m), nil
}

func (uc *QuotationUseCase) get(ctx context.Context, id string) (entity.QuotationMap, error) {
	all, err := uc.quotations.LoadAll(ctx)
	if err != nil {
		return entity.QuotationMap{}, fmt.Errorf("listar mapas: %w", err)
	}
	for _, m := range all {
		if m.ID == id {
			return m, nil
		}
	}
	return entity.QuotationMap{}, domain.ErrNotFound
}

// Map expone la entidad completa a otros casos de uso.
func (uc *QuotationUseCase) Map(ctx context.Context, id string) (entity.QuotationMap, error) {
	return uc.get(ctx, id)
}

// UpdateHeader edita título, solicitante, departamento, status, tag y prazo.
func (uc *QuotationUseCase) UpdateHeader(ctx context.Context, id string, in dto.QuotationHeaderRequest) (*dto.QuotationMapResponse, error) {
	patch := quotation.HeaderPatch{
		Title:            in.Title,
		Requester:        in.Requester,
		Department:       in.Department,
		EquipmentTag:     in.EquipmentTag,
		DeliveryDeadline: in.DeliveryDeadline,
	}
	if in.Status != nil {
		s := entity.QuotationStatus(strings.ToUpper(strings.TrimSpace(*in.Status)))
		if !entity.IsValidQuotationStatus(s) {
			return nil, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, *in.Status)
		}
		patch.Status = &s
	}
	return uc.mutate(ctx, id, func(m entity.QuotationMap) (entity.QuotationMap, error) {
		return quotation.UpdateHeader(m, patch), nil
	})
}

// Delete elimina el mapa.
func (uc *QuotationUseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(_ repository.OrderRepository, quotations repository.QuotationRepository) error {
		all, err := quotations.LoadAll(ctx)
		if err != nil {
			return err
		}
		out := make([]entity.QuotationMap, 0, len(all))
		for _, m := range all {
			if m.ID != id {
				out = append(out, m)
			}
		}
		if len(out) == len(all) {
			return domain.ErrNotFound
		}
		return quotations.SaveAll(ctx, out)
	})
}

// AddItem agrega un ítem con los proveedores actuales y precios en cero.
func (uc *QuotationUseCase) AddItem(ctx context.Context, id string) (*dto.QuotationMapResponse, error) {
	return uc.mutate(ctx, id, func(m entity.QuotationMap) (entity.QuotationMap, error) {
		return quotation.AddItem(m, uc.newID), nil
	})
}

// RemoveItem quita un ítem; el último no se puede quitar (domain.ErrLastItem).
func (uc *QuotationUseCase) RemoveItem(ctx context.Context, id, itemID string) (*dto.QuotationMapResponse, error) {
	return uc.mutate(ctx, id, func(m entity.QuotationMap) (entity.QuotationMap, error) {
		if m.ItemIndex(itemID) < 0 {
			return m, fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
		}
		next, ok := quotation.RemoveItem(m, itemID)
		if !ok {
			return m, domain.ErrLastItem
		}
		return next, nil
	})
}

// UpdateItem edita descripción, part number, unidad y cantidad de un ítem.
func (uc *QuotationUseCase) UpdateItem(ctx context.Context, id, itemID string, in dto.QuotationItemRequest) (*dto.QuotationMapResponse, error) {
	patch := quotation.ItemPatch{Description: in.Description, PartNumber: in.PartNumber, Unit: in.Unit}
	if in.Quantity != nil {
		q := in.Quantity.Int()
		patch.Quantity = &q
	}
	return uc.mutate(ctx, id, func(m entity.QuotationMap) (entity.QuotationMap, error) {
		next, ok := quotation.UpdateItem(m, itemID, patch)
		if !ok {
			return m, fmt.Errorf("item %s: %w", itemID, domain.ErrNotFound)
		}
		return next, nil
	})
}

// SetSupplierQuote edita marca, precio unitario y DIFAL de un proveedor en un ítem.
func (uc *QuotationUseCase) SetSupplierQuote(ctx context.Context, id, itemID, supplierID string, in dto.SupplierQuoteRequest) (*dto.QuotationMapResponse, error) {
	patch := quotation.SupplierQuotePatch{Brand: in.Brand}
	if in.UnitPrice != nil {
		v := in.UnitPrice.Decimal
		patch.UnitPrice = &v
	}
	if in.Difal != nil {
		v := in.Difal.Decimal
		patch.Difal = &v
	}
	return uc.mutate(ctx, id, func(m entity.QuotationMap) (entity.QuotationMap, error) {
		next, ok := quotation.SetSupplierQuote(m, itemID, supplierID, patch)
		if !ok {
			return m, fmt.Errorf("item %s / fornecedor %s: %w", itemID, supplierID, domain.ErrNotFound)
		}
		return next, nil
	})
}

// AddSupplier agrega una columna de proveedor a todos los ítems.
func (uc *QuotationUseCase) AddSupplier(ctx context.Context, id string) (*dto.QuotationMapResponse, error) {
	return uc.mutate(ctx, id, func(m entity.QuotationMap) (entity.QuotationMap, error) {
		return quotation.AddSupplier(m, uc.newID), nil
	})
}

// RemoveSupplier quita la columna de todos los ítems; debe quedar al menos un proveedor.
func (uc *QuotationUseCase) RemoveSupplier(ctx context.Context, id, supplierID string) (*dto.QuotationMapResponse, error) {
	return uc.mutate(ctx, id, func(m entity.QuotationMap) (entity.QuotationMap, error) {
		if !hasSupplier(m, supplierID) {
			return m, fmt.Errorf("fornecedor %s: %w", supplierID, domain.ErrNotFound)
		}
		next, ok := quotation.RemoveSupplier(m, supplierID)
		if !ok {
			return m, domain.ErrLastSupplier
		}
		return next, nil
	})
}

// RenameSupplier cambia el nombre de la columna en todos los ítems.
func (uc *QuotationUseCase) RenameSupplier(ctx context.Context, id, supplierID string, in dto.RenameSupplierRequest) (*dto.QuotationMapResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: nome é obrigatório", domain.ErrInvalidInput)
	}
	return uc.mutate(ctx, id, func(m entity.QuotationMap) (entity.QuotationMap, error) {
		next, ok := quotation.RenameSupplier(m, supplierID, in.Name)
		if !ok {
			return m, fmt.Errorf("fornecedor %s: %w", supplierID, domain.ErrNotFound)
		}
		return next, nil
	})
}

// RecalculateItem aplica el motor a un ítem enviado por el cliente, sin persistir.
func (uc *QuotationUseCase) RecalculateItem(in dto.RecalculateItemRequest) entity.QuotationItem {
	item := entity.QuotationItem{ID: in.ID, Quantity: in.Quantity.Int()}
	for _, s := range in.Suppliers {
		item.Suppliers = append(item.Suppliers, entity.SupplierQuote{
			ID:        s.ID,
			Name:      s.Name,
			Brand:     s.Brand,
			UnitPrice: s.UnitPrice.Decimal,
			Difal:     s.Difal.Decimal,
		})
	}
	return quotation.Recalculate(item)
}

// mutate aplica fn al mapa id dentro de una transacción y reescribe la colección.
func (uc *QuotationUseCase) mutate(ctx context.Context, id string, fn func(entity.QuotationMap) (entity.QuotationMap, error)) (*dto.QuotationMapResponse, error) {
	var saved entity.QuotationMap
	err := uc.tx.Run(ctx, func(_ repository.OrderRepository, quotations repository.QuotationRepository) error {
		all, err := quotations.LoadAll(ctx)
		if err != nil {
			return err
		}
		for i := range all {
			if all[i].ID != id {
				continue
			}
			next, err := fn(all[i].Clone())
			if err != nil {
				return err
			}
			all[i] = next
			saved = next
			return quotations.SaveAll(ctx, all)
		}
		return domain.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return toMapResponse(saved), nil
}

func (uc *QuotationUseCase) uniqueMapID(existing []entity.QuotationMap) string {
	taken := make(map[string]bool, len(existing))
	for _, m := range existing {
		taken[m.ID] = true
	}
	for {
		if id := uc.newMapID(); !taken[id] {
			return id
		}
	}
}

func hasSupplier(m entity.QuotationMap, supplierID string) bool {
	for _, it := range m.Items {
		for _, s := range it.Suppliers {
			if s.ID == supplierID {
				return true
			}
		}
	}
	return false
}

func toMapResponse(m entity.QuotationMap) *dto.QuotationMapResponse {
	return &dto.QuotationMapResponse{QuotationMap: m, GrandTotal: quotation.GrandTotal(m)}
}
