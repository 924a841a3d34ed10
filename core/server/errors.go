package server

import "errors"

var (
	// Configuration errors
	ErrMissingAddress = errors.New("server address is required")
	ErrFailedLoadCert = errors.New("failed to load certificate")

	// Server lifecycle errors
	ErrServerAlreadyRunning = errors.New("server is already running")
	ErrListen               = errors.New("failed to listen")
	ErrHTTPServer           = errors.New("HTTP server error")
	ErrHTTPShutdown         = errors.New("HTTP shutdown error")

	// Request handling errors
	ErrNilResponse = errors.New("handler returned nil response")
)
