package models

import "time"

// BookingStatusConfirmed is the only status a stored booking can carry.
const BookingStatusConfirmed = "confirmed"

// Booking represents a confirmed booking record. Immutable once created;
// the collection is kept newest first.
type Booking struct {
	ID           string    `json:"id"`
	ServiceID    string    `json:"serviceId"`
	ServiceTitle string    `json:"serviceTitle"`
	Price        int       `json:"price"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Date         string    `json:"date"` // "YYYY-MM-DD"
	Time         string    `json:"time"` // "HH:MM"
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingInput is the payload submitted from the booking form.
type BookingInput struct {
	ServiceID    string `json:"serviceId" validate:"required"`
	ServiceTitle string `json:"serviceTitle" validate:"required"`
	Price        int    `json:"price" validate:"gte=0"`
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email,max=255"`
	Phone        string `json:"phone" validate:"required,min=7,max=16"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required"`
	Notes        string `json:"notes" validate:"max=500"`
}
