// Package httpx provides HTTP response utilities.
package httpx

import (
	"errors"
	"net/http"

	"github.com/qualitydesk/qualitydesk/internal/shared"
)

// StatusFor maps an operation error to the status of the fragment reporting it.
// Datastore failures answer 200 because htmx only swaps successful responses and
// the error fragment must reach the page.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	case shared.IsDataStoreError(err):
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// Message is the user-visible text for err.
func Message(err error) string {
	var dsErr *shared.DataStoreError
	if errors.As(err, &dsErr) {
		return dsErr.Err.Error()
	}
	if errors.Is(err, shared.ErrNotFound) {
		return err.Error()
	}
	return http.StatusText(http.StatusInternalServerError)
}
