package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sark/core/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestTimingAttrs(t *testing.T) {
	t.Parallel()
	d := 150 * time.Millisecond

	assert.Equal(t, "duration", logger.Duration(d).Key)
	attr := logger.Latency(d)
	require.Equal(t, "latency", attr.Key)
	assert.Equal(t, d, attr.Value.Duration())
}

func TestHTTPAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Method("GET"), "method", "GET"},
		{logger.Path("/api/users"), "path", "/api/users"},
		{logger.Route("/users/:id"), "route", "/users/:id"},
		{logger.RequestID("req-123"), "request_id", "req-123"},
		{logger.ClientIP("10.0.0.1"), "client_ip", "10.0.0.1"},
		{logger.Component("router"), "component", "router"},
		{logger.Event("startup"), "event", "startup"},
		{logger.Version("1.2.3"), "version", "1.2.3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.want, tt.attr.Value.String())
	}

	assert.Equal(t, int64(404), logger.StatusCode(404).Value.Int64())
	assert.Equal(t, int64(13), logger.BytesOut(13).Value.Int64())
	assert.Equal(t, int64(3), logger.Count("routes", 3).Value.Int64())
	assert.Equal(t, int64(2), logger.RetryCount(2).Value.Int64())
}

func TestEmptyInputsAreDropped(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.Route("").Equal(slog.Attr{}))
	assert.True(t, logger.ClientIP("").Equal(slog.Attr{}))
	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))
	assert.True(t, logger.Stack(nil).Equal(slog.Attr{}))
}

func TestKey(t *testing.T) {
	t.Parallel()

	type payload struct{ Name string }
	p := payload{Name: "test"}
	attr := logger.Key("data", p)
	require.Equal(t, "data", attr.Key)
	assert.Equal(t, p, attr.Value.Any())
}

func TestStack(t *testing.T) {
	t.Parallel()
	attr := logger.Stack([]byte("goroutine 1 [running]"))
	require.Equal(t, "stack", attr.Key)
	assert.Contains(t, attr.Value.String(), "goroutine 1")
}
