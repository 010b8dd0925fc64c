// Package errhttp maps domain sentinel errors to HTTP status codes.
// Add a case to mapErrorToStatus for each new domain sentinel error.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/backoffice/pkg/httpx"
	salesdomain "github.com/ghuser/backoffice/services/sales/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), err.Error())
}

// WriteSafeError is WriteError with 5xx messages masked when isProduction is set.
func WriteSafeError(w http.ResponseWriter, err error, isProduction bool) {
	status := mapErrorToStatus(err)
	httpx.JSONError(w, status, httpx.SafeError(err, status, isProduction))
}

// Status returns the HTTP status WriteError would use for err.
func Status(err error) int {
	return mapErrorToStatus(err)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, salesdomain.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, salesdomain.ErrDefaultClientProtected),
		errors.Is(err, salesdomain.ErrClientInUse):
		return http.StatusConflict // 409
	case errors.Is(err, salesdomain.ErrInvalidArgument):
		return http.StatusUnprocessableEntity // 422
	default:
		return http.StatusInternalServerError // 500
	}
}
