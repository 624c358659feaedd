package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Suprimentos-api/internal/application/dto"
	"github.com/jhoicas/Suprimentos-api/internal/domain"
	"github.com/jhoicas/Suprimentos-api/internal/domain/entity"
	"github.com/jhoicas/Suprimentos-api/internal/domain/quotation"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
)

// BackupUseCase exporta y restaura ambas colecciones.
type BackupUseCase struct {
	orders     repository.OrderRepository
	quotations repository.QuotationRepository
	tx         repository.TxRunner
	now        func() time.Time
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(orders repository.OrderRepository, quotations repository.QuotationRepository, tx repository.TxRunner) *BackupUseCase {
	return &BackupUseCase{orders: orders, quotations: quotations, tx: tx, now: time.Now}
}

// Export copia completa de pedidos y mapas.
func (uc *BackupUseCase) Export(ctx context.Context) (*dto.BackupDTO, error) {
	out := &dto.BackupDTO{ExportedAt: uc.now().UTC()}
	err := uc.tx.Run(ctx, func(orders repository.OrderRepository, quotations repository.QuotationRepository) error {
		var err error
		if out.Orders, err = orders.LoadAll(ctx); err != nil {
			return err
		}
		out.Quotations, err = quotations.LoadAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("exportar backup: %w", err)
	}
	return out, nil
}

// Restore reemplaza ambas colecciones en una sola transacción. Los campos derivados de los mapas
// se recalculan; IDs vacíos o duplicados se rechazan.
func (uc *BackupUseCase) Restore(ctx context.Context, in dto.BackupDTO) error {
	if err := validateBackup(in); err != nil {
		return err
	}
	maps := make([]entity.QuotationMap, len(in.Quotations))
	for i, m := range in.Quotations {
		maps[i] = quotation.RecalculateAll(m)
	}
	orders := in.Orders
	if orders == nil {
		orders = []entity.Order{}
	}
	err := uc.tx.Run(ctx, func(or repository.OrderRepository, qr repository.QuotationRepository) error {
		if err := or.SaveAll(ctx, orders); err != nil {
			return err
		}
		return qr.SaveAll(ctx, maps)
	})
	if err != nil {
		return fmt.Errorf("restaurar backup: %w", err)
	}
	return nil
}

func validateBackup(in dto.BackupDTO) error {
	seen := map[string]bool{}
	for _, o := range in.Orders {
		if o.ID == "" || seen[o.ID] {
			return fmt.Errorf("%w: pedido com id vazio ou duplicado %q", domain.ErrInvalidInput, o.ID)
		}
		seen[o.ID] = true
	}
	seen = map[string]bool{}
	for _, m := range in.Quotations {
		if m.ID == "" || seen[m.ID] {
			return fmt.Errorf("%w: mapa com id vazio ou duplicado %q", domain.ErrInvalidInput, m.ID)
		}
		if len(m.Items) == 0 {
			return fmt.Errorf("%w: mapa %s sem itens", domain.ErrInvalidInput, m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}
