package catalog

import "errors"

var (
	// ErrDataUnavailable indicates the dataset or FAQ source could not be
	// loaded. Surfaced to the caller as a retryable error state.
	ErrDataUnavailable = errors.New("catalog: data unavailable")

	// ErrNotFound indicates a lookup of a single listing by id failed.
	ErrNotFound = errors.New("catalog: service not found")
)
