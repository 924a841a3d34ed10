package handler

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"strings"
)

// ErrInvalidTarget is returned when a request target is not an origin-form path.
var ErrInvalidTarget = errors.New("request target must begin with '/'")

// Request is a parsed inbound request.
//
// Path parameters are only ever set by the router through WithParams, which
// returns a copy. A request seen by a handler therefore carries exactly the
// bindings of the route that matched it.
type Request struct {
	Method   Method
	Path     string // always begins with '/'
	RawQuery string // without the leading '?'
	Proto    string // e.g. "HTTP/1.1"
	Header   http.Header
	Body     []byte

	params map[string]string
}

// NewRequest builds a request for method and an origin-form target such as
// "/users/42?expand=true".
func NewRequest(method Method, target string) (*Request, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethod, string(method))
	}
	if target == "" || target[0] != '/' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	path, rawQuery, _ := strings.Cut(target, "?")
	return &Request{
		Method:   method,
		Path:     path,
		RawQuery: rawQuery,
		Proto:    "HTTP/1.1",
		Header:   make(http.Header),
	}, nil
}

// MustNewRequest is like NewRequest but panics on error.
// Intended for tests and static setup.
func MustNewRequest(method Method, target string) *Request {
	req, err := NewRequest(method, target)
	if err != nil {
		panic(err)
	}
	return req
}

// Param returns the value bound to the named path parameter.
func (r *Request) Param(name string) (string, bool) {
	v, ok := r.params[name]
	return v, ok
}

// Params returns a copy of all path parameter bindings.
func (r *Request) Params() map[string]string {
	return maps.Clone(r.params)
}

// WithParams returns a copy of r whose path parameters are replaced by
// params. Headers are copied too, so edits on the result never reach r.
// The body slice is shared and must be treated as immutable.
func (r *Request) WithParams(params map[string]string) *Request {
	r2 := *r
	r2.Header = r.Header.Clone()
	r2.params = params
	return &r2
}

// Clone returns a copy of r that can be modified without affecting r.
// The body slice is shared and must be treated as immutable.
func (r *Request) Clone() *Request {
	r2 := *r
	r2.Header = r.Header.Clone()
	r2.params = maps.Clone(r.params)
	return &r2
}

// Query parses the raw query string. Malformed pairs are skipped.
func (r *Request) Query() url.Values {
	values, _ := url.ParseQuery(r.RawQuery)
	return values
}

// QueryValue returns the first value for key in the query string.
func (r *Request) QueryValue(key string) (string, bool) {
	values := r.Query()
	if _, ok := values[key]; !ok {
		return "", false
	}
	return values.Get(key), true
}

// SetBodyString replaces the body with s.
func (r *Request) SetBodyString(s string) *Request {
	r.Body = []byte(s)
	return r
}

// BodyString returns the body as a string.
func (r *Request) BodyString() string {
	return string(r.Body)
}
