package app

import (
	"context"

	"github.com/dmitrymomot/sark/core/handler"
	"github.com/dmitrymomot/sark/core/router"
)

// App pairs a router with the shared state handed to every handler.
// It is the dispatcher the connection layer drives.
type App[S any] struct {
	router *router.Router[S]
	state  S
}

// New creates an App from a router and the state shared by all requests.
// A nil router is replaced with an empty one.
func New[S any](r *router.Router[S], state S) *App[S] {
	if r == nil {
		r = router.New[S]()
	}
	return &App[S]{router: r, state: state}
}

// Default creates an App with an empty router and no state.
func Default() *App[struct{}] {
	return New(router.New[struct{}](), struct{}{})
}

// Route registers a route on the underlying router.
// It panics under the same conditions as router.Route, including after the
// first request has been handled.
func (a *App[S]) Route(method handler.Method, pattern string, h handler.Handler[S]) *App[S] {
	a.router.Route(method, pattern, h)
	return a
}

// Handle dispatches req through the router with the app state.
// The router is frozen on first use.
func (a *App[S]) Handle(ctx context.Context, req *handler.Request) (*handler.Response, error) {
	a.router.Freeze()
	return a.router.Call(ctx, req, a.state)
}

// Router returns the underlying router.
func (a *App[S]) Router() *router.Router[S] {
	return a.router
}

// State returns the shared state.
func (a *App[S]) State() S {
	return a.state
}
