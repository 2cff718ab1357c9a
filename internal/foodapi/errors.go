package foodapi

import (
	"fmt"
	"net/http"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned by Client.
var (
	// ErrNotFound indicates the requested food does not exist: the API answered
	// 404 or returned an empty document.
	ErrNotFound = constError("food not found")

	// ErrEmptyIdentifier indicates GetFood was called without an identifier.
	ErrEmptyIdentifier = constError("food identifier cannot be empty")
)

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is reports 404 responses as ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
