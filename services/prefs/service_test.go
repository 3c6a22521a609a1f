package prefs

import (
	"context"
	"testing"

	"serveease/storage"
)

func TestThemeDefaultsToLight(t *testing.T) {
	svc := NewService(storage.NewMemoryKV())
	if got := svc.Theme(context.Background()); got != ThemeLight {
		t.Errorf("got %q, want light", got)
	}
}

func TestThemeCorruptValueReadsAsLight(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	if err := kv.Set(ctx, storage.KeyTheme, "sepia"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := NewService(kv).Theme(ctx); got != ThemeLight {
		t.Errorf("got %q, want light", got)
	}
}

func TestToggleTheme(t *testing.T) {
	ctx := context.Background()
	svc := NewService(storage.NewMemoryKV())

	got, err := svc.ToggleTheme(ctx)
	if err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if got != ThemeDark {
		t.Errorf("first toggle: got %q, want dark", got)
	}

	got, err = svc.ToggleTheme(ctx)
	if err != nil {
		t.Fatalf("ToggleTheme: %v", err)
	}
	if got != ThemeLight {
		t.Errorf("second toggle: got %q, want light", got)
	}
}
