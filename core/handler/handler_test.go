package handler_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sark/core/handler"
)

type greeter struct {
	prefix string
}

func (g greeter) Call(_ context.Context, req *handler.Request, state string) (*handler.Response, error) {
	name, ok := req.Param("name")
	if !ok {
		name = state
	}
	return handler.OK().SetBodyString(g.prefix + name + "!"), nil
}

func TestHandlerImplementations(t *testing.T) {
	t.Parallel()

	fn := handler.HandlerFunc[string](func(_ context.Context, _ *handler.Request, state string) (*handler.Response, error) {
		return handler.OK().SetBodyString("state: " + state), nil
	})

	handlers := map[string]handler.Handler[string]{
		"func":   fn,
		"struct": greeter{prefix: "Hello, "},
	}

	want := map[string]string{
		"func":   "state: Guest",
		"struct": "Hello, Guest!",
	}

	for name, h := range handlers {
		resp, err := h.Call(context.Background(), handler.MustNewRequest(handler.MethodGet, "/"), "Guest")
		require.NoError(t, err, name)
		assert.Equal(t, want[name], resp.BodyString(), name)
	}
}

func TestHandlerFuncPropagatesError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	h := handler.HandlerFunc[struct{}](func(context.Context, *handler.Request, struct{}) (*handler.Response, error) {
		return nil, boom
	})

	resp, err := h.Call(context.Background(), handler.MustNewRequest(handler.MethodGet, "/"), struct{}{})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, boom)
}
