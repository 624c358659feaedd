package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Suprimentos-api/internal/domain/repository"
)

var _ repository.TxRunner = (*TxRunner)(nil)

// documentsLockID llave del advisory lock que serializa las escrituras sobre la tabla documents.
const documentsLockID int64 = 0x5355505052

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Las lecturas dentro de fn bloquean la fila (FOR UPDATE); el advisory lock cubre además
// el caso en que el documento aún no existe.
func (r *TxRunner) Run(ctx context.Context, fn func(
	orders repository.OrderRepository,
	quotations repository.QuotationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, documentsLockID); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}

	docs := newLockingDocumentStore(tx)
	if err := fn(&OrderRepo{docs: docs}, &QuotationRepo{docs: docs}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
