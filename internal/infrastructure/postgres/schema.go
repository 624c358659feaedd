package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed migrations/001_documents.sql
var documentsDDL string

// EnsureSchema crea la tabla de documentos si no existe (idempotente).
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, documentsDDL); err != nil {
		return fmt.Errorf("crear tabla documents: %w", err)
	}
	return nil
}
