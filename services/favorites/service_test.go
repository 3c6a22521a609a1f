package favorites

import (
	"context"
	"testing"

	"serveease/storage"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryKV())

	updated, err := svc.Toggle(ctx, "svc-1")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if len(updated) != 1 || updated[0] != "svc-1" {
		t.Fatalf("after add: %v", updated)
	}

	updated, err = svc.Toggle(ctx, "svc-2")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if len(updated) != 2 || updated[0] != "svc-2" {
		t.Errorf("newest favorite must be first: %v", updated)
	}

	updated, err = svc.Toggle(ctx, "svc-1")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if len(updated) != 1 || updated[0] != "svc-2" {
		t.Errorf("after remove: %v", updated)
	}
}

func TestFavoritesPersistAcrossServices(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	if _, err := NewService(kv).Toggle(ctx, "svc-3"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}

	got := NewService(kv).List(ctx)
	if len(got) != 1 || got[0] != "svc-3" {
		t.Errorf("reload mismatch: %v", got)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryKV())

	if _, err := svc.Toggle(ctx, "svc-1"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if got := svc.List(ctx); len(got) != 0 {
		t.Errorf("after clear: %v", got)
	}
}
