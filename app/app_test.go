package app_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sark/app"
	"github.com/dmitrymomot/sark/core/handler"
	"github.com/dmitrymomot/sark/core/router"
)

type counterState struct {
	name string
	hits atomic.Int64
}

func TestDefaultApp(t *testing.T) {
	t.Parallel()

	a := app.Default()
	a.Route(handler.MethodGet, "/", handler.HandlerFunc[struct{}](
		func(context.Context, *handler.Request, struct{}) (*handler.Response, error) {
			return handler.OK().SetBodyString("Hello, World!"), nil
		},
	))
	a.Route(handler.MethodGet, "/greet/:name", handler.HandlerFunc[struct{}](
		func(_ context.Context, req *handler.Request, _ struct{}) (*handler.Response, error) {
			name, _ := req.Param("name")
			return handler.OK().SetBodyString("Hello, " + name + "!"), nil
		},
	))

	ctx := context.Background()

	resp, err := a.Handle(ctx, handler.MustNewRequest(handler.MethodGet, "/"))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "Hello, World!", resp.BodyString())

	resp, err = a.Handle(ctx, handler.MustNewRequest(handler.MethodGet, "/greet/Bob"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, Bob!", resp.BodyString())

	resp, err = a.Handle(ctx, handler.MustNewRequest(handler.MethodPost, "/"))
	assert.ErrorIs(t, err, router.ErrNotFound)
	assert.Nil(t, resp)

	_, err = a.Handle(ctx, handler.MustNewRequest(handler.MethodGet, "/greet"))
	assert.ErrorIs(t, err, router.ErrNotFound)
}

func TestAppPassesState(t *testing.T) {
	t.Parallel()

	st := &counterState{name: "sark"}
	r := router.New[*counterState]().
		Get("/state", handler.HandlerFunc[*counterState](
			func(_ context.Context, _ *handler.Request, s *counterState) (*handler.Response, error) {
				s.hits.Add(1)
				return handler.OK().SetBodyString("Service says: " + s.name), nil
			},
		))
	a := app.New(r, st)

	assert.Same(t, st, a.State())
	assert.Same(t, r, a.Router())

	for range 3 {
		resp, err := a.Handle(context.Background(), handler.MustNewRequest(handler.MethodGet, "/state"))
		require.NoError(t, err)
		assert.Equal(t, "Service says: sark", resp.BodyString())
	}
	assert.Equal(t, int64(3), st.hits.Load())
}

func TestAppFreezesOnFirstHandle(t *testing.T) {
	t.Parallel()

	a := app.Default()
	assert.False(t, a.Router().Frozen())

	_, err := a.Handle(context.Background(), handler.MustNewRequest(handler.MethodGet, "/"))
	assert.ErrorIs(t, err, router.ErrNotFound)
	assert.True(t, a.Router().Frozen())

	assert.Panics(t, func() {
		a.Route(handler.MethodGet, "/late", handler.HandlerFunc[struct{}](
			func(context.Context, *handler.Request, struct{}) (*handler.Response, error) {
				return handler.OK(), nil
			},
		))
	})
}

func TestNewWithNilRouter(t *testing.T) {
	t.Parallel()

	a := app.New[int](nil, 7)
	require.NotNil(t, a.Router())
	assert.Equal(t, 7, a.State())
	assert.Equal(t, 0, a.Router().Len())
}
