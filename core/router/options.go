package router

import "log/slog"

// Option configures a Router during creation.
type Option[S any] func(*Router[S])

// WithLogger sets a logger for dispatch diagnostics. Matches and misses are
// reported at debug level.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(r *Router[S]) {
		if logger != nil {
			r.logger = logger
		}
	}
}
