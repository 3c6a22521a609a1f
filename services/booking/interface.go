package booking

import (
	"context"

	"serveease/models"
)

// Status is the booking creation state machine:
// idle -> loading -> {succeeded | failed}.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// TransactionService drives booking creation and owns the persisted
// booking collection.
type TransactionService interface {
	Create(ctx context.Context, input models.BookingInput) (*models.Booking, error)
	Bookings(ctx context.Context) []models.Booking
	LastBooking() *models.Booking
	ClearLastBooking()
	Status() Status
	LastError() string
}

// PostFunc performs the (simulated) network call that turns an input
// into a confirmed booking record.
type PostFunc func(ctx context.Context, input models.BookingInput) (models.Booking, error)
