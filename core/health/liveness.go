package health

import (
	"context"

	"github.com/dmitrymomot/sark/core/handler"
	"github.com/dmitrymomot/sark/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
//
// Example:
//
//	r.Get("/health/live", health.Liveness[*State]())
func Liveness[S any]() handler.HandlerFunc[S] {
	return func(context.Context, *handler.Request, S) (*handler.Response, error) {
		return response.String("ALIVE"), nil
	}
}

// NoContent returns HTTP 204 without body. Ideal for high-frequency checks.
func NoContent[S any]() handler.HandlerFunc[S] {
	return func(context.Context, *handler.Request, S) (*handler.Response, error) {
		return response.NoContent(), nil
	}
}
