package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/infrastructure/memory"
)

func newQuotationUseCase(t *testing.T) *QuotationUseCase {
	t.Helper()
	store := memory.NewStore()
	uc := NewQuotationUseCase(store.Quotations(), store)
	n := 0
	uc.newID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	uc.today = func() entity.Date { return entity.NewDate(2026, 3, 2) }
	return uc
}

func strPtr(s string) *string { return &s }

func numPtr(s string) *dto.Number {
	n := dto.NewNumber(s)
	return &n
}

func TestQuotationUseCase_CreateDefaults(t *testing.T) {
	uc := newQuotationUseCase(t)
	m, err := uc.Create(context.Background(), "mauricio", dto.CreateQuotationRequest{})
	require.NoError(t, err)

	assert.Regexp(t, `^MAP-\d{6}$`, m.ID)
	assert.Equal(t, "MAURICIO", m.Requester)
	assert.Equal(t, "2026-03-02", m.Date.String())
	assert.Equal(t, entity.QuotationStatusPendente, m.Status)
	require.Len(t, m.Items, 1)
	assert.Equal(t, 3, m.SupplierCount())
	assert.True(t, m.GrandTotal.IsZero())
}

func TestQuotationUseCase_IDUnico(t *testing.T) {
	uc := newQuotationUseCase(t)
	ids := []string{"MAP-111111", "MAP-111111", "MAP-222222"}
	uc.newMapID = func() string { id := ids[0]; ids = ids[1:]; return id }
	ctx := context.Background()

	a, err := uc.Create(ctx, "", dto.CreateQuotationRequest{})
	require.NoError(t, err)
	b, err := uc.Create(ctx, "", dto.CreateQuotationRequest{})
	require.NoError(t, err)
	assert.Equal(t, "MAP-111111", a.ID)
	assert.Equal(t, "MAP-222222", b.ID)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestQuotationUseCase_FlujoCompleto(t *testing.T) {
	uc := newQuotationUseCase(t)
	ctx := context.Background()
	m, err := uc.Create(ctx, "", dto.CreateQuotationRequest{Requester: "ana"})
	require.NoError(t, err)
	item := m.Items[0]
	s1, s2 := item.Suppliers[0].ID, item.Suppliers[1].ID

	m, err = uc.UpdateItem(ctx, m.ID, item.ID, dto.QuotationItemRequest{Description: strPtr("rolamento 6205"), Quantity: numPtr("5")})
	require.NoError(t, err)
	assert.Equal(t, "ROLAMENTO 6205", m.Items[0].Description)

	_, err = uc.RenameSupplier(ctx, m.ID, s1, dto.RenameSupplierRequest{Name: "alfa"})
	require.NoError(t, err)
	_, err = uc.SetSupplierQuote(ctx, m.ID, item.ID, s1, dto.SupplierQuoteRequest{UnitPrice: numPtr("10"), Difal: numPtr("10")})
	require.NoError(t, err)
	m, err = uc.SetSupplierQuote(ctx, m.ID, item.ID, s2, dto.SupplierQuoteRequest{UnitPrice: numPtr("12"), Brand: strPtr("skf")})
	require.NoError(t, err)

	got := m.Items[0]
	assert.Equal(t, "55", got.Suppliers[0].Total.String())
	assert.Equal(t, "60", got.Suppliers[1].Total.String())
	assert.Equal(t, "SKF", got.Suppliers[1].Brand)
	assert.Equal(t, "55", got.LowestTotal.String())
	assert.Equal(t, "ALFA", got.Winner)
	assert.Equal(t, "55", m.GrandTotal.String())

	m, err = uc.AddItem(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, m.Items, 2)
	assert.Equal(t, "002", m.Items[1].Code)
	assert.Equal(t, "ALFA", m.Items[1].Suppliers[0].Name)

	m, err = uc.AddSupplier(ctx, m.ID)
	require.NoError(t, err)
	for _, it := range m.Items {
		require.Len(t, it.Suppliers, 4)
		assert.Equal(t, "FORNECEDOR 4", it.Suppliers[3].Name)
	}

	m, err = uc.RemoveSupplier(ctx, m.ID, s1)
	require.NoError(t, err)
	assert.Equal(t, "60", m.Items[0].LowestTotal.String())
	assert.Equal(t, "FORNECEDOR 2", m.Items[0].Winner)

	m, err = uc.RemoveItem(ctx, m.ID, m.Items[1].ID)
	require.NoError(t, err)
	_, err = uc.RemoveItem(ctx, m.ID, m.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrLastItem)

	stored, err := uc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Items, 1)
}

func TestQuotationUseCase_RemoveSupplierUltimo(t *testing.T) {
	uc := newQuotationUseCase(t)
	ctx := context.Background()
	m, err := uc.Create(ctx, "", dto.CreateQuotationRequest{})
	require.NoError(t, err)
	sup := m.Items[0].Suppliers

	_, err = uc.RemoveSupplier(ctx, m.ID, sup[0].ID)
	require.NoError(t, err)
	m, err = uc.RemoveSupplier(ctx, m.ID, sup[1].ID)
	require.NoError(t, err)
	require.Equal(t, 1, m.SupplierCount())

	_, err = uc.RemoveSupplier(ctx, m.ID, sup[2].ID)
	assert.ErrorIs(t, err, domain.ErrLastSupplier)
	_, err = uc.RemoveSupplier(ctx, m.ID, "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, err := uc.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.SupplierCount())
}

func TestQuotationUseCase_HeaderYDelete(t *testing.T) {
	uc := newQuotationUseCase(t)
	ctx := context.Background()
	m, err := uc.Create(ctx, "", dto.CreateQuotationRequest{})
	require.NoError(t, err)

	deadline := entity.NewDate(2026, 4, 1)
	m, err = uc.UpdateHeader(ctx, m.ID, dto.QuotationHeaderRequest{
		Title:            strPtr("bomba hidráulica"),
		Status:           strPtr("aprovado"),
		DeliveryDeadline: &deadline,
	})
	require.NoError(t, err)
	assert.Equal(t, "BOMBA HIDRÁULICA", m.Title)
	assert.Equal(t, entity.QuotationStatusAprovado, m.Status)
	assert.Equal(t, "2026-04-01", m.DeliveryDeadline.String())

	_, err = uc.UpdateHeader(ctx, m.ID, dto.QuotationHeaderRequest{Status: strPtr("talvez")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, uc.Delete(ctx, m.ID))
	assert.ErrorIs(t, uc.Delete(ctx, m.ID), domain.ErrNotFound)
	_, err = uc.GetByID(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestQuotationUseCase_RecalculateItem(t *testing.T) {
	uc := newQuotationUseCase(t)
	item := uc.RecalculateItem(dto.RecalculateItemRequest{
		Quantity: dto.NewNumber("2"),
		Suppliers: []dto.SupplierQuoteInput{
			{ID: "a", Name: "ALFA", UnitPrice: dto.NewNumber("10")},
			{ID: "b", Name: "BETA", UnitPrice: dto.NewNumber("abc")},
			{ID: "c", Name: "GAMA", UnitPrice: dto.NewNumber("10")},
		},
	})
	assert.Equal(t, "20", item.LowestTotal.String())
	assert.Equal(t, "ALFA / GAMA", item.Winner)
	assert.True(t, item.Suppliers[1].Total.IsZero())
}
