package response

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/sark/core/handler"
)

// WithHeaders sets headers on resp and returns it.
func WithHeaders(resp *handler.Response, headers map[string]string) *handler.Response {
	if resp == nil || len(headers) == 0 {
		return resp
	}
	if resp.Header == nil {
		resp.Header = make(http.Header, len(headers))
	}
	for k, v := range headers {
		resp.Header.Set(k, v)
	}
	return resp
}

// WithCache sets cache control headers on resp. A positive maxAge enables
// public caching; anything else disables caching.
func WithCache(resp *handler.Response, maxAge time.Duration) *handler.Response {
	if resp == nil {
		return nil
	}
	if resp.Header == nil {
		resp.Header = make(http.Header)
	}

	if maxAge > 0 {
		resp.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge.Seconds())))
		resp.Header.Set("Expires", time.Now().Add(maxAge).UTC().Format(http.TimeFormat))
	} else {
		resp.Header.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		resp.Header.Set("Pragma", "no-cache")
		resp.Header.Set("Expires", "0")
	}
	return resp
}
