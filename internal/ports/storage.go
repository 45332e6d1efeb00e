package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get for keys that were never written
// or have been deleted since.
var ErrKeyNotFound = errors.New("storage key not found")

// KVStore is durable string-keyed client storage. Values are opaque JSON
// documents; implementations must not interpret them.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
