// Package handler defines the request and response values exchanged between
// the connection layer and the router, and the Handler capability that every
// route target implements.
//
// # Features
//
//   - Type-safe handlers parameterised by the application state type
//   - Closures and stateful structs are interchangeable handlers
//   - Plain value types for requests and responses, no I/O attached
//   - Path parameters that only the router can bind
//
// # Core Types
//
//	import "github.com/dmitrymomot/sark/core/handler"
//
//	// Anything with a Call method is a handler
//	type Handler[S any] interface {
//		Call(ctx context.Context, req *Request, state S) (*Response, error)
//	}
//
//	// Adapter for plain functions
//	type HandlerFunc[S any] func(ctx context.Context, req *Request, state S) (*Response, error)
//
// # Function Handlers
//
//	hello := handler.HandlerFunc[*AppState](func(ctx context.Context, req *handler.Request, s *AppState) (*handler.Response, error) {
//		return handler.OK().SetBodyString("Hello, World!"), nil
//	})
//
// # Struct Handlers
//
// Structs carry their own dependencies and satisfy the same contract:
//
//	type GreetHandler struct{ Fallback string }
//
//	func (h GreetHandler) Call(ctx context.Context, req *handler.Request, s *AppState) (*handler.Response, error) {
//		name, ok := req.Param("name")
//		if !ok {
//			name = h.Fallback
//		}
//		return handler.OK().SetBodyString("Hello, " + name + "!"), nil
//	}
//
// # Shared State
//
// The state value is shared by all concurrent calls. Keep it read-only, and
// put anything mutable behind synchronisation the state owns:
//
//	type AppState struct {
//		Greeting string
//		visits   atomic.Int64
//	}
//
// # Requests
//
// Requests are built by the connection layer or, in tests, with NewRequest:
//
//	req := handler.MustNewRequest(handler.MethodGet, "/greet/Alice?lang=en")
//	req.Header.Set("Accept", "text/plain")
//
//	lang, _ := req.QueryValue("lang") // "en"
//
// Path parameters are bound by the router. WithParams returns a copy, so a
// request object is never mutated in place while routes are being tried.
package handler
