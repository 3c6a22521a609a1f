package favorites

import (
	"context"
	"sync"

	"serveease/storage"
)

// Service owns the persisted favorite-listing id set. The mutex
// serializes each read-modify-write-persist sequence.
type Service struct {
	Store storage.KV

	mu sync.Mutex
}

func NewService(store storage.KV) *Service {
	return &Service{Store: store}
}

// List returns the favorite ids, most recently added first.
func (s *Service) List(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.LoadCollection[string](ctx, s.Store, storage.KeyFavorites)
}

// Toggle adds the id to the front of the set, or removes it when already
// present. Returns the updated set.
func (s *Service) Toggle(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := storage.LoadCollection[string](ctx, s.Store, storage.KeyFavorites)
	updated := make([]string, 0, len(current)+1)
	removed := false
	for _, fav := range current {
		if fav == id {
			removed = true
			continue
		}
		updated = append(updated, fav)
	}
	if !removed {
		updated = append([]string{id}, updated...)
	}

	if err := storage.SaveCollection(ctx, s.Store, storage.KeyFavorites, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// Clear empties the favorite set.
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.SaveCollection(ctx, s.Store, storage.KeyFavorites, []string{})
}
