package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sark/core/response"
	"github.com/dmitrymomot/sark/core/router"
)

// customStatusError is a test error that implements StatusCode() int
type customStatusError struct {
	message string
	status  int
}

func (e customStatusError) Error() string   { return e.message }
func (e customStatusError) StatusCode() int { return e.status }

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("modifiers return copies", func(t *testing.T) {
		t.Parallel()

		custom := response.ErrBadRequest.WithMessage("missing name")
		assert.Equal(t, "missing name", custom.Error())
		assert.Equal(t, "Bad Request", response.ErrBadRequest.Message)
		assert.Equal(t, http.StatusBadRequest, custom.StatusCode())
	})

	t.Run("with error records cause", func(t *testing.T) {
		t.Parallel()

		e := response.ErrConflict.WithError(errors.New("duplicate key"))
		assert.Equal(t, "duplicate key", e.Details["cause"])
		assert.Nil(t, response.ErrConflict.Details)
		assert.Equal(t, response.ErrConflict, response.ErrConflict.WithError(nil))
	})

	t.Run("errors.Is matches customised copies", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("wrapped: %w", response.ErrUnauthorized.WithMessage("token expired"))
		assert.ErrorIs(t, err, response.ErrUnauthorized)
		assert.NotErrorIs(t, err, response.ErrForbidden)
	})

	t.Run("new http error is internal", func(t *testing.T) {
		t.Parallel()

		e := response.NewHTTPError("boom")
		assert.Equal(t, http.StatusInternalServerError, e.Status)
		assert.Equal(t, "boom", e.Message)
	})
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"route not found", router.ErrNotFound, http.StatusNotFound, "not_found"},
		{"wrapped route not found", fmt.Errorf("dispatch: %w", router.ErrNotFound), http.StatusNotFound, "not_found"},
		{"http error", response.ErrTooManyRequests, http.StatusTooManyRequests, "too_many_requests"},
		{"wrapped http error", fmt.Errorf("op: %w", response.ErrGone), http.StatusGone, "gone"},
		{"status code interface", customStatusError{"nope", http.StatusForbidden}, http.StatusForbidden, "forbidden"},
		{"unknown status code", customStatusError{"teapot", http.StatusTeapot}, http.StatusInternalServerError, "internal_server_error"},
		{"plain error", errors.New("db down"), http.StatusInternalServerError, "internal_server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := response.AsHTTPError(tt.err)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestAsHTTPErrorHidesInternalCause(t *testing.T) {
	t.Parallel()

	got := response.AsHTTPError(errors.New("password=hunter2"))
	assert.NotContains(t, got.Details, "cause")
	assert.Equal(t, "Internal Server Error", got.Message)

	got = response.AsHTTPError(customStatusError{"bad field", http.StatusBadRequest})
	assert.Equal(t, "bad field", got.Details["cause"])
}

func TestTextErrorHandler(t *testing.T) {
	t.Parallel()

	resp := response.TextErrorHandler(router.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "Not Found", resp.BodyString())
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	resp = response.TextErrorHandler(response.ErrBadRequest.WithMessage("missing id"))
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "missing id", resp.BodyString())
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	resp := response.JSONErrorHandler(response.ErrUnprocessableEntity.WithDetails(map[string]any{
		"email": "invalid",
	}))
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Status)

	var body response.HTTPError
	require.NoError(t, json.Unmarshal(resp.Body, &body))
	assert.Equal(t, "unprocessable_entity", body.Code)
	assert.Equal(t, "invalid", body.Details["email"])

	t.Run("unencodable details are dropped", func(t *testing.T) {
		t.Parallel()

		resp := response.JSONErrorHandler(response.ErrBadRequest.WithDetails(map[string]any{
			"fn": func() {},
		}))
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.NotContains(t, resp.BodyString(), "details")
	})
}
