package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/sark/core/handler"
)

// JSON creates an application/json response with 200 OK status.
func JSON(v any) (*handler.Response, error) {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with a custom status.
// A zero status means 204 for nil data and 200 otherwise. 204 and 304
// responses carry no body.
func JSONWithStatus(v any, status int) (*handler.Response, error) {
	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}

	resp := handler.NewResponse(status)
	resp.Header.Set("Content-Type", contentTypeJSON)

	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return resp, nil
	}

	body, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode json response: %w", err)
	}
	resp.Body = append(body, '\n')
	return resp, nil
}
