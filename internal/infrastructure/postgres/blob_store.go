package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/mistica-api/internal/domain/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS mistica_blobs (
	key        TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// BlobStore implementa repository.BlobStore sobre una tabla clave/JSONB.
type BlobStore struct {
	pool *pgxpool.Pool
}

var _ repository.BlobStore = (*BlobStore)(nil)

// NewBlobStore construye el store y crea la tabla si no existe.
func NewBlobStore(ctx context.Context, pool *pgxpool.Pool) (*BlobStore, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("crear tabla mistica_blobs: %w", err)
	}
	return &BlobStore{pool: pool}, nil
}

// Load devuelve el documento o nil si la clave no existe.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM mistica_blobs WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer blob %s: %w", key, err)
	}
	return data, nil
}

// Save inserta o reemplaza el documento.
func (s *BlobStore) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO mistica_blobs (key, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("guardar blob %s: %w", key, err)
	}
	return nil
}

// Delete elimina el documento; no falla si no existe.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM mistica_blobs WHERE key = $1`, key); err != nil {
		return fmt.Errorf("borrar blob %s: %w", key, err)
	}
	return nil
}
