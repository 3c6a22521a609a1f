package prefs

import (
	"context"
	"sync"

	"serveease/storage"
)

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Service manages the persisted theme preference.
type Service struct {
	Store storage.KV

	mu sync.Mutex
}

func NewService(store storage.KV) *Service {
	return &Service{Store: store}
}

// Theme returns the stored preference, defaulting to light.
func (s *Service) Theme(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	theme, err := s.Store.Get(ctx, storage.KeyTheme)
	if err != nil || (theme != ThemeLight && theme != ThemeDark) {
		return ThemeLight
	}
	return theme
}

// SetTheme stores the preference; unknown values are coerced to light.
func (s *Service) SetTheme(ctx context.Context, theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		theme = ThemeLight
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Store.Set(ctx, storage.KeyTheme, theme)
}

// ToggleTheme flips between light and dark and returns the new value.
func (s *Service) ToggleTheme(ctx context.Context) (string, error) {
	current := s.Theme(ctx)
	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
