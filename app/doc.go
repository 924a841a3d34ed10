// Package app binds a router to application state.
//
// An App is what the connection layer drives: each parsed request goes to
// Handle, which runs the router with the shared state. State is fixed at
// construction and never swapped.
//
//	type State struct{ Greeting string }
//
//	r := router.New[*State]().
//		Get("/", handler.HandlerFunc[*State](home))
//	a := app.New(r, &State{Greeting: "hi"})
//
//	http.ListenAndServe(":8080", server.NewHandler(a))
//
// The router is frozen on the first call to Handle; registering routes after
// that panics with router.ErrRouterFrozen.
package app
