package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"serveease/models"
	"serveease/storage"
	"serveease/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTransactionService implements TransactionService on top of the
// persistent collection store. The mutex serializes the whole
// read-modify-write-persist sequence, and doubles as the single-flight
// guard: a second Create while one is loading fails fast with ErrBusy
// instead of racing the first.
type DefaultTransactionService struct {
	Store storage.KV
	Post  PostFunc

	validate *validator.Validate

	mu      sync.Mutex
	status  Status
	last    *models.Booking
	lastErr string
}

// NewDefaultTransactionService builds the service. A nil post falls back
// to the built-in confirmation with a short simulated network delay.
func NewDefaultTransactionService(store storage.KV, post PostFunc) *DefaultTransactionService {
	if post == nil {
		post = defaultPost
	}
	return &DefaultTransactionService{
		Store:    store,
		Post:     post,
		validate: validator.New(),
		status:   StatusIdle,
	}
}

func defaultPost(ctx context.Context, input models.BookingInput) (models.Booking, error) {
	select {
	case <-time.After(650 * time.Millisecond):
	case <-ctx.Done():
		return models.Booking{}, ctx.Err()
	}
	return models.Booking{
		ID:           "booking-" + uuid.New().String(),
		ServiceID:    input.ServiceID,
		ServiceTitle: input.ServiceTitle,
		Price:        input.Price,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		Date:         input.Date,
		Time:         input.Time,
		Notes:        input.Notes,
		Status:       models.BookingStatusConfirmed,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Create runs one booking creation through the status machine. On
// success the new booking is prepended to the persisted collection and
// becomes LastBooking. On failure the collection is left untouched and
// the error message is retained for the caller.
func (s *DefaultTransactionService) Create(ctx context.Context, input models.BookingInput) (*models.Booking, error) {
	s.mu.Lock()
	if s.status == StatusLoading {
		s.mu.Unlock()
		return nil, ErrBusy
	}
	s.status = StatusLoading
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.validate.Struct(input); err != nil {
		return nil, s.fail(fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}

	created, err := s.Post(ctx, input)
	if err != nil {
		return nil, s.fail(fmt.Errorf("create booking: %w", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := storage.LoadCollection[models.Booking](ctx, s.Store, storage.KeyBookings)
	updated := append([]models.Booking{created}, current...)
	if err := storage.SaveCollection(ctx, s.Store, storage.KeyBookings, updated); err != nil {
		s.status = StatusFailed
		s.lastErr = err.Error()
		return nil, fmt.Errorf("persist booking: %w", err)
	}

	s.last = &created
	s.status = StatusSucceeded
	utils.GetLogger().Info("booking: created",
		zap.String("id", created.ID),
		zap.String("service", created.ServiceID),
	)
	return &created, nil
}

func (s *DefaultTransactionService) fail(err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusFailed
	s.lastErr = err.Error()
	return err
}

// Bookings returns the persisted collection, newest first.
func (s *DefaultTransactionService) Bookings(ctx context.Context) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return storage.LoadCollection[models.Booking](ctx, s.Store, storage.KeyBookings)
}

func (s *DefaultTransactionService) LastBooking() *models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// ClearLastBooking drops the last-created booking reference without
// touching status or the collection. Used once the confirmation view is
// dismissed.
func (s *DefaultTransactionService) ClearLastBooking() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last = nil
}

func (s *DefaultTransactionService) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *DefaultTransactionService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
