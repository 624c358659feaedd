// Package analytics contiene los indicadores del painel y la vista de relatórios.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/domain/installment"
	"github.com/jhoicas/Suprimentos-api/internal/domain/order"
	"github.com/jhoicas/Suprimentos-api/internal/domain/quotation"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
)

const dashboardTopSuppliers = 5 // proveedores en el widget del painel

// DashboardUseCase calcula KPIs sobre las colecciones guardadas. Solo lectura.
type DashboardUseCase struct {
	orders     repository.OrderRepository
	quotations repository.QuotationRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(orders repository.OrderRepository, quotations repository.QuotationRepository) *DashboardUseCase {
	return &DashboardUseCase{orders: orders, quotations: quotations}
}

// GetSummary KPIs del painel sobre los pedidos no archivados.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	all, err := uc.orders.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar pedidos: %w", err)
	}
	return Summarize(order.Active(all)), nil
}

// GetReports carga pedidos y mapas en paralelo y arma la vista de relatórios.
func (uc *DashboardUseCase) GetReports(ctx context.Context) (*dto.ReportsDTO, error) {
	var (
		orders []entity.Order
		maps   []entity.QuotationMap
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = uc.orders.LoadAll(gctx)
		if err != nil {
			return fmt.Errorf("relatórios: listar pedidos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		maps, err = uc.quotations.LoadAll(gctx)
		if err != nil {
			return fmt.Errorf("relatórios: listar mapas: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := Report(order.Active(orders))
	rep.Quotations = QuotationReport(maps)
	return rep, nil
}

// Summarize KPIs de una lista de pedidos ya filtrada.
// Top proveedores: los primeros cinco en orden de aparición, con su valor acumulado.
func Summarize(orders []entity.Order) *dto.DashboardSummaryDTO {
	out := &dto.DashboardSummaryDTO{
		ProvisionedTotal: decimal.Zero,
		OutstandingTotal: decimal.Zero,
		FlowCount:        len(orders),
		TopSuppliers:     []dto.SupplierTotal{},
	}
	index := map[string]int{}
	var totals []dto.SupplierTotal
	for _, o := range orders {
		out.ProvisionedTotal = out.ProvisionedTotal.Add(o.Amount)
		out.OutstandingTotal = out.OutstandingTotal.Add(installment.Outstanding(o.Installments))
		if o.Priority == entity.PriorityUrgente {
			out.UrgentCount++
		}
		if o.Status != entity.OrderStatusNFRecebida {
			out.PendingNFCount++
		}
		i, ok := index[o.Supplier]
		if !ok {
			i = len(totals)
			index[o.Supplier] = i
			totals = append(totals, dto.SupplierTotal{Supplier: o.Supplier, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(o.Amount)
	}
	if len(totals) > dashboardTopSuppliers {
		totals = totals[:dashboardTopSuppliers]
	}
	out.TopSuppliers = append(out.TopSuppliers, totals...)
	return out
}

// Report contadores de relatórios sobre una lista de pedidos ya filtrada.
func Report(orders []entity.Order) *dto.ReportsDTO {
	out := &dto.ReportsDTO{TotalAmount: decimal.Zero}
	byStatus := map[entity.OrderStatus]int{}
	for _, o := range orders {
		if order.HasReference(o.SolicitationNo) {
			out.SolicitationCount++
		}
		if order.HasReference(o.PurchaseOrderNo) {
			out.PurchaseCount++
		}
		switch o.Status {
		case entity.OrderStatusNFRecebida:
			out.InvoiceCount++
		default:
			out.PendingCount++
		}
		if o.Status == entity.OrderStatusCancelado {
			out.CancelledCount++
		}
		out.TotalAmount = out.TotalAmount.Add(o.Amount)
		byStatus[o.Status]++
	}
	for _, s := range []entity.OrderStatus{
		entity.OrderStatusSolicitado,
		entity.OrderStatusEmCotacao,
		entity.OrderStatusPedidoEmitido,
		entity.OrderStatusNFRecebida,
		entity.OrderStatusCancelado,
	} {
		out.ByStatus = append(out.ByStatus, dto.StatusCount{Status: s, Count: byStatus[s]})
	}
	return out
}

// QuotationReport conteo por status y total de mejores precios de todos los mapas.
func QuotationReport(maps []entity.QuotationMap) dto.QuotationReportDTO {
	out := dto.QuotationReportDTO{
		Count:      len(maps),
		ByStatus:   map[entity.QuotationStatus]int{},
		BestPrices: decimal.Zero,
	}
	for _, s := range entity.QuotationStatuses {
		out.ByStatus[s] = 0
	}
	for _, m := range maps {
		out.ByStatus[m.Status]++
		out.BestPrices = out.BestPrices.Add(quotation.GrandTotal(m))
	}
	return out
}
