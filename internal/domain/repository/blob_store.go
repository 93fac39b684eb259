package repository

import "context"

// Claves de los blobs persistidos.
const (
	StockStoreKey  = "mistica-stock-store"
	AuthStorageKey  = "mistica-auth-storage"
)

// BlobStore define el puerto de persistencia de estado serializado (DIP).
// Cada clave guarda un documento JSON completo que se reemplaza en cada escritura.
type BlobStore interface {
	// Load devuelve el contenido de key; (nil, nil) si la clave no existe.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
