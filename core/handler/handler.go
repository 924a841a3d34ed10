package handler

import "context"

// Handler processes a request against the shared application state.
// Any type with a Call method is a handler, so closures (via HandlerFunc)
// and stateful structs are interchangeable.
//
// state is shared by every concurrent call. Handlers must treat it as
// read-only; mutable shared data belongs behind a lock or atomic owned by
// the state value itself.
type Handler[S any] interface {
	Call(ctx context.Context, req *Request, state S) (*Response, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc[S any] func(ctx context.Context, req *Request, state S) (*Response, error)

// Call calls f(ctx, req, state).
func (f HandlerFunc[S]) Call(ctx context.Context, req *Request, state S) (*Response, error) {
	return f(ctx, req, state)
}
