// Package server is the connection layer: an http.Server wrapper with
// graceful shutdown, and an adapter that drives a Dispatcher from net/http.
//
// # Serving an app
//
//	a := app.New(r, state)
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	h := server.NewHandler(a,
//		server.WithAccessLogger(log),
//		server.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
//	)
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, h))
//	return eg.Wait()
//
// Run returns a closure for errgroup. It starts the server and shuts it down
// gracefully when the context is cancelled.
//
// # Request handling
//
// NewHandler converts every *http.Request into a handler.Request with a fully
// buffered body and dispatches it. Path is the escaped request path, so
// parameters bind undecoded values. Unknown methods are rejected with 400 and
// bodies over the configured limit with 413.
//
// Errors returned by the dispatcher go through the error handler
// (response.TextErrorHandler unless WithErrorHandler is given):
//
//   - router.ErrNotFound becomes 404
//   - response.HTTPError values keep their status
//   - errors with a StatusCode() int method use that status
//   - anything else, including recovered panics, becomes 500
//
// Content-Length is set from the body when the handler did not set it.
// Every response carries X-Request-ID, reusing the inbound value when
// present. RequestID reads it back from the handler context.
//
// # Defaults
//
//   - ReadTimeout: 15 seconds
//   - WriteTimeout: 15 seconds
//   - IdleTimeout: 60 seconds
//   - MaxHeaderBytes: 1MB
//   - Request body limit: 4MB
//   - Graceful shutdown timeout: 30 seconds
//   - Logger: no-op
//
// Config reads the same settings from SERVER_* environment variables.
package server
