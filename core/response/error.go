package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/sark/core/router"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// AsHTTPError converts any error to an HTTPError.
//
// An HTTPError anywhere in the chain is returned as is, and router.ErrNotFound
// becomes ErrNotFound. Otherwise the first
// error in the chain implementing StatusCode() int selects the status, and
// everything else becomes a 500. The original error is attached as the cause
// unless it is already the predefined value.
func AsHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	if errors.Is(err, router.ErrNotFound) {
		return ErrNotFound
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	// Internal error text is not leaked to clients.
	if baseErr.Status >= http.StatusInternalServerError {
		return baseErr
	}
	return baseErr.WithError(err)
}
