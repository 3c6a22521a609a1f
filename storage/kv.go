package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get when no value exists for the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// KV is the durable key-value surface the collection store runs on.
// Production binds it to Redis; tests inject MemoryKV.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
