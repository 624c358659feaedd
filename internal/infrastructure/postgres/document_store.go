package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DocumentStore almacén clave-valor de documentos JSON (tabla documents). Usable con pool o tx.
type DocumentStore struct {
	q         Querier
	forUpdate bool
}

// NewDocumentStore construye el almacén. Pasar pool o tx (Querier).
func NewDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{q: q}
}

// newLockingDocumentStore lee con FOR UPDATE; solo válido dentro de una transacción.
func newLockingDocumentStore(q Querier) *DocumentStore {
	return &DocumentStore{q: q, forUpdate: true}
}

// Get devuelve el cuerpo JSON del documento; ok=false si la clave no existe.
func (s *DocumentStore) Get(ctx context.Context, key string) (body []byte, ok bool, err error) {
	query := `SELECT body FROM documents WHERE key = $1`
	if s.forUpdate {
		query += ` FOR UPDATE`
	}
	err = s.q.QueryRow(ctx, query, key).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		if isUndefinedTable(err) {
			return nil, false, fmt.Errorf("tabla documents inexistente, ejecute las migraciones: %w", err)
		}
		return nil, false, fmt.Errorf("get document %s: %w", key, err)
	}
	return body, true, nil
}

// Put reemplaza (upsert) el documento completo junto con sus metadatos de conteo y valor total.
func (s *DocumentStore) Put(ctx context.Context, key string, body []byte, count int, total decimal.Decimal) error {
	query := `
		INSERT INTO documents (key, body, item_count, total_value, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (key) DO UPDATE
		SET body        = EXCLUDED.body,
		    item_count  = EXCLUDED.item_count,
		    total_value = EXCLUDED.total_value,
		    updated_at  = EXCLUDED.updated_at`
	if _, err := s.q.Exec(ctx, query, key, body, count, total.Round(2)); err != nil {
		return fmt.Errorf("put document %s: %w", key, err)
	}
	return nil
}
