package handler

import (
	"errors"
	"fmt"
)

// ErrInvalidMethod is returned when a method token is not a standard HTTP verb.
var ErrInvalidMethod = errors.New("invalid http method")

// Method is a standard HTTP request method.
type Method string

// Standard HTTP methods.
const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodPatch   Method = "PATCH"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
)

var methods = map[string]Method{
	"GET":     MethodGet,
	"HEAD":    MethodHead,
	"POST":    MethodPost,
	"PUT":     MethodPut,
	"PATCH":   MethodPatch,
	"DELETE":  MethodDelete,
	"CONNECT": MethodConnect,
	"OPTIONS": MethodOptions,
	"TRACE":   MethodTrace,
}

// ParseMethod converts a request-line token into a Method.
// Method tokens are case-sensitive, so "get" is rejected.
func ParseMethod(s string) (Method, error) {
	m, ok := methods[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
	return m, nil
}

// Valid reports whether m is one of the standard methods.
func (m Method) Valid() bool {
	_, ok := methods[string(m)]
	return ok
}

func (m Method) String() string {
	return string(m)
}
