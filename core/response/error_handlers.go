package response

import (
	"net/http"

	"github.com/dmitrymomot/sark/core/handler"
)

// ErrorHandler turns a dispatch error into the response written to the client.
// It must always return a non-nil response.
type ErrorHandler func(err error) *handler.Response

// TextErrorHandler renders errors as plain text with the mapped status.
func TextErrorHandler(err error) *handler.Response {
	httpErr := AsHTTPError(err)
	return StringWithStatus(httpErr.Message, httpErr.Status)
}

// JSONErrorHandler renders errors as a JSON object with code, message and details.
func JSONErrorHandler(err error) *handler.Response {
	httpErr := AsHTTPError(err)
	resp, encErr := JSONWithStatus(httpErr, httpErr.Status)
	if encErr != nil {
		// Details may hold values that cannot be encoded; drop them.
		httpErr.Details = nil
		if resp, encErr = JSONWithStatus(httpErr, httpErr.Status); encErr != nil {
			return StringWithStatus(http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
	return resp
}
