// Package storage abre el almacén de documentos configurado (memoria o PostgreSQL).
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
	"github.com/jhoicas/Suprimentos-api/internal/infrastructure/memory"
	"github.com/jhoicas/Suprimentos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Suprimentos-api/pkg/config"
	"github.com/jhoicas/Suprimentos-api/pkg/logger"
)

// Backend repositorios y TxRunner del driver elegido.
type Backend struct {
	Orders     repository.OrderRepository
	Quotations repository.QuotationRepository
	Tx         repository.TxRunner
	close      func()
}

// Close libera el pool de conexiones (no-op en memoria).
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// Open construye el backend según STORAGE_DRIVER. Con postgres crea la tabla documents si falta.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Backend, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return newMemory(), nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("storage: conexión a PostgreSQL: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("storage: %w", err)
		}
		log.Info().Str("driver", cfg.Storage.Driver).Msg("almacén de documentos listo")
		return &Backend{
			Orders:     postgres.NewOrderRepository(pool),
			Quotations: postgres.NewQuotationRepository(pool),
			Tx:         postgres.NewTxRunner(pool),
			close:      pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
}

func newMemory() *Backend {
	s := memory.NewStore()
	return &Backend{Orders: s.Orders(), Quotations: s.Quotations(), Tx: s}
}
