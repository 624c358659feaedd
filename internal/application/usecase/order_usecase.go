package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/domain/installment"
	"github.com/jhoicas/Suprimentos-api/internal/domain/order"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
)

// OrderUseCase casos de uso de la cartera de pedidos.
// Cada escritura lee la colección, la modifica y la reescribe dentro de una transacción.
type OrderUseCase struct {
	orders repository.OrderRepository
	tx     repository.TxRunner
	newID  func() string
	today  func() entity.Date
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(orders repository.OrderRepository, tx repository.TxRunner) *OrderUseCase {
	return &OrderUseCase{
		orders: orders,
		tx:     tx,
		newID:  func() string { return uuid.New().String() },
		today:  entity.Today,
	}
}

// Create valida, genera el cronograma si no viene editado y agrega el pedido al inicio de la cartera.
func (uc *OrderUseCase) Create(ctx context.Context, operator string, in dto.OrderRequest) (*entity.Order, error) {
	o, err := uc.fromRequest(in, operator)
	if err != nil {
		return nil, err
	}
	o.ID = uc.newID()
	if len(o.Installments) == 0 {
		o.Installments = installment.Generate(o.Amount, o.InstallmentCount, scheduleStart(o, uc.today()))
	}

	err = uc.tx.Run(ctx, func(orders repository.OrderRepository, _ repository.QuotationRepository) error {
		all, err := orders.LoadAll(ctx)
		if err != nil {
			return err
		}
		return orders.SaveAll(ctx, append([]entity.Order{o}, all...))
	})
	if err != nil {
		return nil, fmt.Errorf("crear pedido: %w", err)
	}
	return &o, nil
}

// Update reemplaza el registro completo. El cronograma no se regenera: se guarda el enviado
// o, si viene vacío, se conserva el existente.
func (uc *OrderUseCase) Update(ctx context.Context, operator, id string, in dto.OrderRequest) (*entity.Order, error) {
	next, err := uc.fromRequest(in, operator)
	if err != nil {
		return nil, err
	}
	var saved entity.Order
	err = uc.mutate(ctx, id, func(cur entity.Order) (entity.Order, error) {
		next.ID = cur.ID
		next.Archived = cur.Archived
		if len(next.Installments) == 0 {
			next.Installments = cur.Clone().Installments
			next.InstallmentCount = cur.InstallmentCount
		}
		saved = next
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// GetByID devuelve el pedido o domain.ErrNotFound.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	all, err := uc.orders.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	for _, o := range all {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List aplica el filtro (activos/histórico, búsqueda, status, prioridad) y totaliza.
func (uc *OrderUseCase) List(ctx context.Context, q dto.OrderListQuery) (*dto.OrderListResponse, error) {
	filter, err := toFilter(q)
	if err != nil {
		return nil, err
	}
	all, err := uc.orders.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}
	items := filter.Apply(all)
	total := decimal.Zero
	for _, o := range items {
		total = total.Add(o.Amount)
	}
	return &dto.OrderListResponse{Items: items, Count: len(items), TotalAmount: total}, nil
}

// ToggleArchive mueve el pedido entre la cartera activa y el histórico.
func (uc *OrderUseCase) ToggleArchive(ctx context.Context, id string) (*entity.Order, error) {
	var saved entity.Order
	err := uc.mutate(ctx, id, func(cur entity.Order) (entity.Order, error) {
		cur.Archived = !cur.Archived
		saved = cur
		return cur, nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete elimina el pedido en forma permanente. Sin confirm no toca nada.
func (uc *OrderUseCase) Delete(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationNeeded
	}
	return uc.tx.Run(ctx, func(orders repository.OrderRepository, _ repository.QuotationRepository) error {
		all, err := orders.LoadAll(ctx)
		if err != nil {
			return err
		}
		out := make([]entity.Order, 0, len(all))
		found := false
		for _, o := range all {
			if o.ID == id {
				found = true
				continue
			}
			out = append(out, o)
		}
		if !found {
			return domain.ErrNotFound
		}
		return orders.SaveAll(ctx, out)
	})
}

// UpdateInstallment edita una parcela. Si cambia el valor, el total del pedido se recalcula.
func (uc *OrderUseCase) UpdateInstallment(ctx context.Context, id string, number int, in dto.InstallmentPatchRequest) (*entity.Order, error) {
	patch := installment.Patch{DueDate: in.DueDate, Paid: in.Paid}
	if in.Amount != nil {
		amount := in.Amount.Decimal
		patch.Amount = &amount
	}
	var saved entity.Order
	err := uc.mutate(ctx, id, func(cur entity.Order) (entity.Order, error) {
		next, ok := installment.Update(cur, number, patch)
		if !ok {
			return cur, fmt.Errorf("parcela %d: %w", number, domain.ErrNotFound)
		}
		saved = next
		return next, nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// PreviewInstallments calcula el cronograma sin persistir (formulario aún no guardado).
func (uc *OrderUseCase) PreviewInstallments(in dto.InstallmentPreviewRequest) (*dto.InstallmentPreviewResponse, error) {
	count, err := installmentCount(in.Count.Int())
	if err != nil {
		return nil, err
	}
	start := in.Start
	if start.IsZero() {
		start = uc.today()
	}
	list := installment.Generate(in.Amount.Decimal, count, start)
	return &dto.InstallmentPreviewResponse{Installments: list, Total: installment.Sum(list)}, nil
}

// installmentCount lleva a 1 los valores menores y rechaza los que superan installment.MaxCount.
func installmentCount(n int) (int, error) {
	if n > installment.MaxCount {
		return 0, fmt.Errorf("%w: parcelas deve ser no máximo %d", domain.ErrInvalidInput, installment.MaxCount)
	}
	if n < 1 {
		return 1, nil
	}
	return n, nil
}

// mutate aplica fn al pedido id dentro de una transacción y reescribe la colección.
func (uc *OrderUseCase) mutate(ctx context.Context, id string, fn func(entity.Order) (entity.Order, error)) error {
	return uc.tx.Run(ctx, func(orders repository.OrderRepository, _ repository.QuotationRepository) error {
		all, err := orders.LoadAll(ctx)
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
			return orders.SaveAll(ctx, all)
		}
		return domain.ErrNotFound
	})
}

// fromRequest normaliza y valida el formulario. No asigna ID.
func (uc *OrderUseCase) fromRequest(in dto.OrderRequest, operator string) (entity.Order, error) {
	sc := strings.TrimSpace(in.SolicitationNo)
	if sc == "" {
		return entity.Order{}, fmt.Errorf("%w: solicitacao_no é obrigatório", domain.ErrInvalidInput)
	}
	if in.Amount.IsNegative() {
		return entity.Order{}, fmt.Errorf("%w: valor não pode ser negativo", domain.ErrInvalidInput)
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	if !entity.IsValidPriority(priority) {
		return entity.Order{}, fmt.Errorf("%w: prioridade %q", domain.ErrInvalidInput, priority)
	}
	status := in.Status
	if status == "" {
		status = entity.OrderStatusSolicitado
	}
	if !entity.IsValidOrderStatus(status) {
		return entity.Order{}, fmt.Errorf("%w: status %q", domain.ErrInvalidInput, status)
	}
	count, err := installmentCount(in.InstallmentCount.Int())
	if err != nil {
		return entity.Order{}, err
	}
	if len(in.Installments) > installment.MaxCount {
		return entity.Order{}, fmt.Errorf("%w: lista_parcelas com mais de %d parcelas", domain.ErrInvalidInput, installment.MaxCount)
	}
	requestDate := in.RequestDate
	if requestDate.IsZero() {
		requestDate = uc.today()
	}

	o := entity.Order{
		SolicitationNo:   sc,
		PurchaseOrderNo:  strings.TrimSpace(in.PurchaseOrderNo),
		InvoiceNo:        strings.TrimSpace(in.InvoiceNo),
		RequestDate:      requestDate,
		InvoiceDueDate:   in.InvoiceDueDate,
		ExpectedDelivery: in.ExpectedDelivery,
		Supplier:         strings.ToUpper(strings.TrimSpace(in.Supplier)),
		Amount:           in.Amount.Round(2),
		InstallmentCount: count,
		Priority:         priority,
		Status:           status,
		Responsible:      responsible(in.Responsible, operator),
		Notes:            in.Notes,
		DelayStatus:      entity.DelayStatusOnTime,
	}
	if len(in.Installments) > 0 {
		list := make([]entity.Installment, 0, len(in.Installments))
		for _, p := range in.Installments {
			list = append(list, entity.Installment{DueDate: p.DueDate, Amount: p.Amount.Round(2), Paid: p.Paid})
		}
		o.Installments = installment.Renumber(list)
		o.InstallmentCount = len(list)
	}
	return o, nil
}

func responsible(given, operator string) string {
	if r := strings.TrimSpace(given); r != "" {
		return strings.ToUpper(r)
	}
	if operator != "" {
		return strings.ToUpper(operator)
	}
	return entity.DefaultResponsible
}

// scheduleStart fecha de la primera parcela: vencimiento de la NF, si no la solicitud, si no hoy.
func scheduleStart(o entity.Order, today entity.Date) entity.Date {
	switch {
	case !o.InvoiceDueDate.IsZero():
		return o.InvoiceDueDate
	case !o.RequestDate.IsZero():
		return o.RequestDate
	default:
		return today
	}
}

func toFilter(q dto.OrderListQuery) (order.Filter, error) {
	return order.ParseFilter(q.Archived, q.Search, q.Status, q.Priority)
}
