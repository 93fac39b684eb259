// Package bolt implementa BlobStore sobre un archivo bbolt local.
package bolt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/mistica-api/internal/domain/repository"
)

var bucket = []byte("mistica")

// BlobStore guarda cada clave en un único bucket.
type BlobStore struct {
	db *bolt.DB
}

var _ repository.BlobStore = (*BlobStore)(nil)

// Open abre (o crea) el archivo en path.
func Open(path string) (*BlobStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("bolt: crear directorio: %w", err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt: abrir %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bolt: crear bucket: %w", err)
	}
	return &BlobStore{db: db}, nil
}

// Close cierra el archivo.
func (s *BlobStore) Close() error {
	return s.db.Close()
}

// Load devuelve una copia del valor o nil si la clave no existe.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucket).Get([]byte(key)); v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

// Save reemplaza el valor.
func (s *BlobStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(key), data)
	})
}

// Delete elimina la clave; no falla si no existe.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucket).Delete([]byte(key))
	})
}
