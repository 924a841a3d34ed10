// Package router provides an ordered route registry with first-match-wins
// dispatch and single-segment path parameters.
//
// # Features
//
//   - Linear dispatch in registration order, first structural match wins
//   - Literal patterns compared byte-for-byte (trailing slash matters)
//   - Named parameters (":name") binding exactly one path segment
//   - Generic over the application state type
//   - Lock-free, allocation-light dispatch that is safe for concurrent use
//   - Registration-time validation with panics for programming errors
//
// # Basic Usage
//
//	import (
//		"github.com/dmitrymomot/sark/core/handler"
//		"github.com/dmitrymomot/sark/core/router"
//	)
//
//	r := router.New[*AppState]()
//
//	r.Get("/", handler.HandlerFunc[*AppState](home)).
//		Get("/greet/:name", GreetHandler{}).
//		Post("/users", handler.HandlerFunc[*AppState](createUser))
//
//	resp, err := r.Call(ctx, req, state)
//	if errors.Is(err, router.ErrNotFound) {
//		// no route matched
//	}
//
// # Matching Rules
//
// For each route, in the order routes were registered:
//
//  1. The route's method must equal the request method.
//  2. A pattern without parameter segments matches only the identical path.
//  3. A pattern with parameter segments is split on '/', empty segments are
//     dropped, and the segment counts must be equal. Literal segments must be
//     equal; ":name" segments always match and bind name to the segment.
//
// The first route that matches is invoked and its result is returned as is.
// When nothing matches the result is ErrNotFound, even if some route matched
// the path with a different method. There is no 405 detection.
//
// # Precedence
//
// Registration order is the only tie-break:
//
//	r.Get("/users/:id", userHandler)
//	r.Get("/users/me", meHandler) // never reached: "/users/:id" matches first
//
// Register more specific routes first when both should be reachable.
//
// # Path Parameters
//
// The handler receives a copy of the request holding only the bindings of the
// route that matched:
//
//	func (h GreetHandler) Call(ctx context.Context, req *handler.Request, s *AppState) (*handler.Response, error) {
//		name, _ := req.Param("name")
//		return handler.OK().SetBodyString("Hello, " + name + "!"), nil
//	}
//
// # Lifecycle
//
// Routes are registered once at startup. Freeze marks the router read-only,
// after which Route panics with ErrRouterFrozen. The app package freezes the
// router on the first dispatch.
package router
