package handler

import "net/http"

// Response is the value a handler produces. It is written to the wire by
// the connection layer; nothing is inherited from the request.
type Response struct {
	Status int // zero means 200
	Header http.Header
	Body   []byte
}

// NewResponse creates an empty response with the given status code.
func NewResponse(status int) *Response {
	return &Response{
		Status: status,
		Header: make(http.Header),
	}
}

// OK creates an empty 200 response.
func OK() *Response {
	return NewResponse(http.StatusOK)
}

// NotFound creates an empty 404 response.
func NotFound() *Response {
	return NewResponse(http.StatusNotFound)
}

// StatusCode returns the effective status code.
func (r *Response) StatusCode() int {
	if r.Status == 0 {
		return http.StatusOK
	}
	return r.Status
}

// SetBody replaces the body.
func (r *Response) SetBody(b []byte) *Response {
	r.Body = b
	return r
}

// SetBodyString replaces the body with s.
func (r *Response) SetBodyString(s string) *Response {
	r.Body = []byte(s)
	return r
}

// BodyString returns the body as a string.
func (r *Response) BodyString() string {
	return string(r.Body)
}
