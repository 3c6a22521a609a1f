package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// Well-known store keys. Each consumer owns its namespace; the store
// itself holds no cross-key invariants.
const (
	KeyBookings  = "bookings"
	KeyFavorites = "favorites"
	KeyAuth      = "auth"
	KeyTheme     = "theme"
)

// LoadCollection reads the collection stored under key. Missing or
// corrupt data yields an empty slice, never an error: persisted state
// is best-effort and a bad value must not take the app down.
func LoadCollection[T any](ctx context.Context, kv KV, key string) []T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}

// SaveCollection writes the full collection under key. The value is
// marshalled before the single Set, so callers never observe a partial
// write: either the new collection lands or the prior value remains.
func SaveCollection[T any](ctx context.Context, kv KV, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal collection %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save collection %q: %w", key, err)
	}
	return nil
}

// LoadRecord reads a single stored record. The boolean reports whether
// a well-formed record was present; corrupt data reads as absent.
func LoadRecord[T any](ctx context.Context, kv KV, key string) (T, bool) {
	var rec T
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return rec, false
	}
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		var zero T
		return zero, false
	}
	return rec, true
}

// SaveRecord writes a single record under key.
func SaveRecord[T any](ctx context.Context, kv KV, key string, rec T) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record %q: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("save record %q: %w", key, err)
	}
	return nil
}
