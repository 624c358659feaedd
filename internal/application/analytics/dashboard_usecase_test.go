package analytics

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/infrastructure/memory"
)

func ord(id, supplier string, amount int64, st entity.OrderStatus, p entity.Priority) entity.Order {
	return entity.Order{ID: id, SolicitationNo: id, Supplier: supplier, Amount: decimal.NewFromInt(amount), Status: st, Priority: p}
}

func TestSummarize(t *testing.T) {
	orders := []entity.Order{
		ord("1", "ALFA", 100, entity.OrderStatusSolicitado, entity.PriorityUrgente),
		ord("2", "BETA", 50, entity.OrderStatusNFRecebida, entity.PriorityNormal),
		ord("3", "ALFA", 25, entity.OrderStatusPedidoEmitido, entity.PriorityAlta),
	}
	for i, s := range []string{"C", "D", "E", "F"} {
		orders = append(orders, ord(fmt.Sprintf("x%d", i), s, 1, entity.OrderStatusNFRecebida, entity.PriorityNormal))
	}

	orders[0].Installments = []entity.Installment{
		{Number: 1, Amount: decimal.NewFromInt(60), Paid: true},
		{Number: 2, Amount: decimal.NewFromInt(40)},
	}

	sum := Summarize(orders)
	assert.Equal(t, "179", sum.ProvisionedTotal.String())
	assert.Equal(t, "40", sum.OutstandingTotal.String())
	assert.Equal(t, 1, sum.UrgentCount)
	assert.Equal(t, 2, sum.PendingNFCount)
	assert.Equal(t, 7, sum.FlowCount)
	require.Len(t, sum.TopSuppliers, 5)
	assert.Equal(t, "ALFA", sum.TopSuppliers[0].Supplier)
	assert.Equal(t, "125", sum.TopSuppliers[0].Total.String())
	assert.Equal(t, "E", sum.TopSuppliers[4].Supplier)
}

func TestSummarize_Vacio(t *testing.T) {
	sum := Summarize(nil)
	assert.True(t, sum.ProvisionedTotal.IsZero())
	assert.NotNil(t, sum.TopSuppliers)
	assert.Empty(t, sum.TopSuppliers)
}

func TestGetReports(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	archived := ord("9", "Z", 999, entity.OrderStatusSolicitado, entity.PriorityNormal)
	archived.Archived = true
	noRef := ord("---", "Y", 5, entity.OrderStatusCancelado, entity.PriorityNormal)
	withPD := ord("10", "X", 10, entity.OrderStatusNFRecebida, entity.PriorityNormal)
	withPD.PurchaseOrderNo = "PD-1"
	require.NoError(t, s.Orders().SaveAll(ctx, []entity.Order{archived, noRef, withPD}))
	require.NoError(t, s.Quotations().SaveAll(ctx, []entity.QuotationMap{
		{ID: "MAP-1", Status: entity.QuotationStatusAprovado, Items: []entity.QuotationItem{{LowestTotal: decimal.NewFromInt(40)}}},
		{ID: "MAP-2", Status: entity.QuotationStatusPendente, Items: []entity.QuotationItem{{LowestTotal: decimal.NewFromInt(2)}}},
	}))

	uc := NewDashboardUseCase(s.Orders(), s.Quotations())
	rep, err := uc.GetReports(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.SolicitationCount)
	assert.Equal(t, 1, rep.PurchaseCount)
	assert.Equal(t, 1, rep.InvoiceCount)
	assert.Equal(t, 1, rep.PendingCount)
	assert.Equal(t, 1, rep.CancelledCount)
	assert.Equal(t, "15", rep.TotalAmount.String())
	require.Len(t, rep.ByStatus, 5)

	assert.Equal(t, 2, rep.Quotations.Count)
	assert.Equal(t, 1, rep.Quotations.ByStatus[entity.QuotationStatusAprovado])
	assert.Equal(t, 0, rep.Quotations.ByStatus[entity.QuotationStatusReprovado])
	assert.Equal(t, "42", rep.Quotations.BestPrices.String())

	sum, err := uc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.FlowCount)
}
