package router

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/dmitrymomot/sark/core/handler"
)

// Router is an ordered registry of routes.
//
// Routes are matched in registration order and the first structural match
// wins. There is no specificity scoring: a parameter route registered before
// a literal route that it also matches will shadow the literal one.
//
// Routes must be registered before the router starts serving. After Freeze
// the router is read-only and safe for concurrent use.
type Router[S any] struct {
	routes []route[S]
	frozen atomic.Bool
	logger *slog.Logger
}

// Route describes a single registered route.
type Route struct {
	Method  handler.Method
	Pattern string
}

type route[S any] struct {
	method  handler.Method
	pattern pattern
	handler handler.Handler[S]
}

// New creates an empty router. Dispatching on an empty router always fails
// with ErrNotFound.
func New[S any](opts ...Option[S]) *Router[S] {
	r := &Router[S]{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Route appends a route and returns the router for chaining.
// Earlier routes are left untouched and keep their precedence.
//
// Route panics if the method is not a standard verb, the pattern is invalid,
// h is nil, or the router has been frozen.
func (r *Router[S]) Route(method handler.Method, pattern string, h handler.Handler[S]) *Router[S] {
	if r.frozen.Load() {
		panic(fmt.Errorf("%w: %s %s", ErrRouterFrozen, method, pattern))
	}
	if !method.Valid() {
		panic(fmt.Errorf("%w: %q", ErrInvalidMethod, string(method)))
	}
	if h == nil {
		panic(fmt.Errorf("%w on '%s'", ErrNilHandler, pattern))
	}

	p, err := parsePattern(pattern)
	if err != nil {
		panic(err)
	}

	r.routes = append(r.routes, route[S]{
		method:  method,
		pattern: p,
		handler: h,
	})
	return r
}

// Get registers a handler for GET requests.
func (r *Router[S]) Get(pattern string, h handler.Handler[S]) *Router[S] {
	return r.Route(handler.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (r *Router[S]) Post(pattern string, h handler.Handler[S]) *Router[S] {
	return r.Route(handler.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (r *Router[S]) Put(pattern string, h handler.Handler[S]) *Router[S] {
	return r.Route(handler.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (r *Router[S]) Delete(pattern string, h handler.Handler[S]) *Router[S] {
	return r.Route(handler.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (r *Router[S]) Patch(pattern string, h handler.Handler[S]) *Router[S] {
	return r.Route(handler.MethodPatch, pattern, h)
}

// Head registers a handler for HEAD requests.
func (r *Router[S]) Head(pattern string, h handler.Handler[S]) *Router[S] {
	return r.Route(handler.MethodHead, pattern, h)
}

// Options registers a handler for OPTIONS requests.
func (r *Router[S]) Options(pattern string, h handler.Handler[S]) *Router[S] {
	return r.Route(handler.MethodOptions, pattern, h)
}

// Connect registers a handler for CONNECT requests.
func (r *Router[S]) Connect(pattern string, h handler.Handler[S]) *Router[S] {
	return r.Route(handler.MethodConnect, pattern, h)
}

// Trace registers a handler for TRACE requests.
func (r *Router[S]) Trace(pattern string, h handler.Handler[S]) *Router[S] {
	return r.Route(handler.MethodTrace, pattern, h)
}

// Freeze makes the router read-only. Further calls to Route panic with
// ErrRouterFrozen. Freeze is idempotent.
func (r *Router[S]) Freeze() {
	r.frozen.Store(true)
}

// Frozen reports whether Freeze has been called.
func (r *Router[S]) Frozen() bool {
	return r.frozen.Load()
}

// Routes returns all registered routes in matching order.
func (r *Router[S]) Routes() []Route {
	routes := make([]Route, len(r.routes))
	for i, rt := range r.routes {
		routes[i] = Route{Method: rt.method, Pattern: rt.pattern.raw}
	}
	return routes
}

// Len returns the number of registered routes.
func (r *Router[S]) Len() int {
	return len(r.routes)
}

// Router is itself a handler, so routers can be nested.
var _ handler.Handler[struct{}] = (*Router[struct{}])(nil)
