package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/sark/core/handler"
	"github.com/dmitrymomot/sark/core/health"
	"github.com/dmitrymomot/sark/core/response"
	"github.com/dmitrymomot/sark/core/router"
)

func newRouter(log *slog.Logger, checks ...func(context.Context) error) *router.Router[*State] {
	r := router.New(router.WithLogger[*State](log))

	r.Get("/", handler.HandlerFunc[*State](hello))
	r.Get("/greet", handler.HandlerFunc[*State](greet))
	r.Get("/greet/:name", handler.HandlerFunc[*State](greet))
	r.Get("/custom", customHandler{})
	r.Get("/state", handler.HandlerFunc[*State](stateMessage))
	r.Get("/visits", handler.HandlerFunc[*State](visits))
	r.Get("/health/live", health.Liveness[*State]())
	r.Get("/health/ready", health.Readiness[*State](log, checks...))

	return r
}

func hello(context.Context, *handler.Request, *State) (*handler.Response, error) {
	return response.String("Hello, World!"), nil
}

// greet prefers the path parameter, then the name query value.
func greet(_ context.Context, req *handler.Request, _ *State) (*handler.Response, error) {
	name, ok := req.Param("name")
	if !ok {
		name, ok = req.QueryValue("name")
	}
	if !ok || name == "" {
		name = "Guest"
	}
	return response.String(fmt.Sprintf("Hello, %s!", name)), nil
}

// customHandler is a struct handler with no captured data.
type customHandler struct{}

func (customHandler) Call(context.Context, *handler.Request, *State) (*handler.Response, error) {
	return response.String("Greetings from custom handler!"), nil
}

func stateMessage(_ context.Context, _ *handler.Request, s *State) (*handler.Response, error) {
	return response.String("Service says: " + s.Message), nil
}

func visits(ctx context.Context, _ *handler.Request, s *State) (*handler.Response, error) {
	n, err := s.Visits.Incr(ctx)
	if err != nil {
		return nil, response.ErrServiceUnavailable.WithMessage("visit counter unavailable")
	}
	return response.JSON(map[string]int64{"visits": n})
}
