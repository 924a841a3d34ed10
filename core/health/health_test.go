package health_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sark/core/handler"
	"github.com/dmitrymomot/sark/core/health"
	"github.com/dmitrymomot/sark/core/response"
)

func TestLiveness(t *testing.T) {
	t.Parallel()

	resp, err := health.Liveness[struct{}]().Call(context.Background(), handler.MustNewRequest(handler.MethodGet, "/health/live"), struct{}{})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "ALIVE", resp.BodyString())
}

func TestNoContent(t *testing.T) {
	t.Parallel()

	resp, err := health.NoContent[int]().Call(context.Background(), handler.MustNewRequest(handler.MethodGet, "/ping"), 0)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.Status)
	assert.Empty(t, resp.Body)
}

func TestReadiness(t *testing.T) {
	t.Parallel()

	req := handler.MustNewRequest(handler.MethodGet, "/health/ready")
	ok := func(context.Context) error { return nil }
	fail := func(context.Context) error { return errors.New("redis: connection refused") }

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()

		resp, err := health.Readiness[struct{}](nil, ok, ok).Call(context.Background(), req, struct{}{})
		require.NoError(t, err)
		assert.Equal(t, "READY", resp.BodyString())
	})

	t.Run("no checks", func(t *testing.T) {
		t.Parallel()

		resp, err := health.Readiness[struct{}](nil).Call(context.Background(), req, struct{}{})
		require.NoError(t, err)
		assert.Equal(t, "READY", resp.BodyString())
	})

	t.Run("first failure stops", func(t *testing.T) {
		t.Parallel()

		called := false
		after := func(context.Context) error { called = true; return nil }

		resp, err := health.Readiness[struct{}](nil, ok, fail, after).Call(context.Background(), req, struct{}{})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, response.ErrServiceUnavailable)
		assert.Equal(t, http.StatusServiceUnavailable, response.AsHTTPError(err).Status)
		assert.False(t, called)
	})
}
