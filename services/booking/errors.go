package booking

import "errors"

var (
	// ErrBusy rejects a Create while another creation is in flight.
	ErrBusy = errors.New("booking: creation already in progress")

	// ErrInvalidInput wraps payload validation failures.
	ErrInvalidInput = errors.New("booking: invalid input")
)
