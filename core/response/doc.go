// Package response builds handler responses and maps errors to HTTP statuses.
//
// Constructors return *handler.Response values ready to be returned from a
// handler:
//
//	import "github.com/dmitrymomot/sark/core/response"
//
//	greet := handler.HandlerFunc[*State](func(ctx context.Context, req *handler.Request, s *State) (*handler.Response, error) {
//		name, _ := req.Param("name")
//		return response.String("Hello, " + name + "!"), nil
//	})
//
//	// JSON bodies
//	resp, err := response.JSONWithStatus(user, http.StatusCreated)
//
// # Errors
//
// Handlers report failures by returning errors. HTTPError carries a status,
// a machine readable code and a message:
//
//	return nil, response.ErrForbidden.WithMessage("read only account")
//
// AsHTTPError resolves any error to an HTTPError. router.ErrNotFound maps to
// 404, errors implementing StatusCode() int map to their status, and
// everything else maps to 500 without leaking the error text.
//
// TextErrorHandler and JSONErrorHandler render the resolved error and are
// plugged into the connection layer with server.WithErrorHandler.
package response
