package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
)

func TestBackupUseCase_ExportRestore(t *testing.T) {
	s := seededStore(t)
	uc := NewBackupUseCase(s.Orders(), s.Quotations(), s)
	ctx := context.Background()

	exported, err := uc.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, exported.Orders, 2)
	assert.Len(t, exported.Quotations, 1)

	restore := dto.BackupDTO{
		Orders: []entity.Order{{ID: "9", SolicitationNo: "900"}},
		Quotations: []entity.QuotationMap{{
			ID: "MAP-2",
			Items: []entity.QuotationItem{{
				ID:       "i",
				Quantity: 2,
				Suppliers: []entity.SupplierQuote{
					{ID: "a", Name: "ALFA", UnitPrice: decimal.NewFromInt(5)},
				},
			}},
		}},
	}
	require.NoError(t, uc.Restore(ctx, restore))

	orders, err := s.Orders().LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "900", orders[0].SolicitationNo)

	maps, err := s.Quotations().LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, maps, 1)
	assert.Equal(t, "10", maps[0].Items[0].LowestTotal.String())
	assert.Equal(t, "ALFA", maps[0].Items[0].Winner)
}

func TestBackupUseCase_RestoreInvalidoNoToca(t *testing.T) {
	s := seededStore(t)
	uc := NewBackupUseCase(s.Orders(), s.Quotations(), s)
	ctx := context.Background()

	err := uc.Restore(ctx, dto.BackupDTO{Orders: []entity.Order{{ID: "x"}, {ID: "x"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.Restore(ctx, dto.BackupDTO{Quotations: []entity.QuotationMap{{ID: "MAP-9"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	orders, err := s.Orders().LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
