// Package memory implementa BlobStore en memoria para tests y STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/mistica-api/internal/domain/repository"
)

// BlobStore guarda copias de los blobs en un mapa protegido por RWMutex.
type BlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ repository.BlobStore = (*BlobStore)(nil)

// NewBlobStore crea un store vacío.
func NewBlobStore() *BlobStore {
	return &BlobStore{blobs: make(map[string][]byte)}
}

// Load devuelve una copia del blob o nil si no existe.
func (s *BlobStore) Load(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

// Save reemplaza el blob.
func (s *BlobStore) Save(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), data...)
	return nil
}

// Delete elimina el blob; no falla si no existe.
func (s *BlobStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, key)
	return nil
}
