package handlers

import (
	"errors"
	"net/http"

	"serveease/models"
	"serveease/services/booking"
	"serveease/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes booking creation and the persisted collection.
type BookingHandler struct {
	Svc booking.TransactionService
}

func NewBookingHandler(svc booking.TransactionService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload.", err.Error())
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBusy):
			utils.JSONError(c, http.StatusConflict, "A booking is already being created.", err.Error())
		case errors.Is(err, booking.ErrInvalidInput):
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload.", err.Error())
		default:
			utils.JSONError(c, http.StatusBadGateway, "Unable to create booking.", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBookings handles GET /api/bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.Svc.Bookings(c.Request.Context())})
}

// GetBookingState handles GET /api/bookings/state.
func (h *BookingHandler) GetBookingState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      h.Svc.Status(),
		"error":       h.Svc.LastError(),
		"lastBooking": h.Svc.LastBooking(),
	})
}

// ClearLastBooking handles DELETE /api/bookings/last.
func (h *BookingHandler) ClearLastBooking(c *gin.Context) {
	h.Svc.ClearLastBooking()
	c.Status(http.StatusNoContent)
}
