package user

import (
	"context"
	"errors"
	"strings"
	"sync"

	"serveease/models"
	"serveease/storage"

	"github.com/google/uuid"
)

// Demo credentials. Authentication here is a static credential check;
// there is deliberately no password hashing or token issuance.
const (
	DefaultEmail    = "user@example.com"
	DefaultPassword = "password123"
)

var ErrInvalidCredentials = errors.New("user: invalid email or password")

// Service manages the persisted authenticated-user record.
type Service struct {
	Store storage.KV

	mu sync.Mutex
}

func NewService(store storage.KV) *Service {
	return &Service{Store: store}
}

// Login checks the static demo credentials and persists the user record
// on success.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	if !strings.EqualFold(strings.TrimSpace(email), DefaultEmail) || password != DefaultPassword {
		return nil, ErrInvalidCredentials
	}
	user := models.User{
		ID:    "user-" + uuid.New().String(),
		Email: DefaultEmail,
		Name:  "Demo User",
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := storage.SaveRecord(ctx, s.Store, storage.KeyAuth, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register accepts any well-formed email and persists the new record.
func (s *Service) Register(ctx context.Context, email, name string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidCredentials
	}
	user := models.User{
		ID:    "user-" + uuid.New().String(),
		Email: email,
		Name:  name,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := storage.SaveRecord(ctx, s.Store, storage.KeyAuth, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser returns the persisted record, if any. A corrupt record
// reads as signed out.
func (s *Service) CurrentUser(ctx context.Context) (*models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := storage.LoadRecord[models.User](ctx, s.Store, storage.KeyAuth)
	if !ok {
		return nil, false
	}
	return &user, true
}

// Logout removes the persisted record.
func (s *Service) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Store.Delete(ctx, storage.KeyAuth)
}
