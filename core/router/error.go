package router

import (
	"errors"

	"github.com/dmitrymomot/sark/core/handler"
)

var (
	// Dispatch errors
	ErrNotFound = errors.New("route not found")

	// Registration errors
	ErrInvalidMethod  = handler.ErrInvalidMethod
	ErrInvalidPattern = errors.New("invalid route path pattern")
	ErrDuplicateParam = errors.New("duplicate parameter name")
	ErrNilHandler     = errors.New("nil handler")
	ErrRouterFrozen   = errors.New("router is frozen")
)
