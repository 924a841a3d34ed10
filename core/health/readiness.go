package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/sark/core/handler"
	"github.com/dmitrymomot/sark/core/logger"
	"github.com/dmitrymomot/sark/core/response"
)

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass and response.ErrServiceUnavailable
// on the first failure. The failure cause is logged, not returned.
//
// Example:
//
//	r.Get("/health/ready", health.Readiness[*State](log, redis.Healthcheck(client)))
func Readiness[S any](log *slog.Logger, fn ...func(context.Context) error) handler.HandlerFunc[S] {
	if log == nil {
		log = logger.Nop()
	}

	return func(ctx context.Context, _ *handler.Request, _ S) (*handler.Response, error) {
		for _, f := range fn {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				return nil, response.ErrServiceUnavailable
			}
		}

		return response.String("READY"), nil
	}
}
