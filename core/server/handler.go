package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sark/core/handler"
	"github.com/dmitrymomot/sark/core/logger"
	"github.com/dmitrymomot/sark/core/response"
)

// Dispatcher resolves a parsed request to a response.
// *app.App satisfies it.
type Dispatcher interface {
	Handle(ctx context.Context, req *handler.Request) (*handler.Response, error)
}

// PanicError wraps a value recovered from a panicking handler.
// Error handlers receive it like any other error and map it to 500.
type PanicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *PanicError) Value() any {
	return e.value
}

// Stack returns the stack trace captured at the panic point.
func (e *PanicError) Stack() []byte {
	return e.stack
}

// HandlerOption configures the HTTP adapter created by NewHandler.
type HandlerOption func(*httpHandler)

// WithAccessLogger sets the logger used for access logs and dispatch failures.
func WithAccessLogger(l *slog.Logger) HandlerOption {
	return func(h *httpHandler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithErrorHandler sets how dispatch errors become responses.
// Defaults to response.TextErrorHandler.
func WithErrorHandler(fn response.ErrorHandler) HandlerOption {
	return func(h *httpHandler) {
		if fn != nil {
			h.errorHandler = fn
		}
	}
}

// WithMaxBodyBytes limits the request body size. Larger bodies are rejected
// with 413. Zero or negative disables the limit.
func WithMaxBodyBytes(n int64) HandlerOption {
	return func(h *httpHandler) {
		h.maxBodyBytes = n
	}
}

// WithRequestIDGenerator overrides the request ID generator (default: UUID v4).
func WithRequestIDGenerator(fn func() string) HandlerOption {
	return func(h *httpHandler) {
		if fn != nil {
			h.newRequestID = fn
		}
	}
}

type httpHandler struct {
	dispatcher   Dispatcher
	logger       *slog.Logger
	errorHandler response.ErrorHandler
	maxBodyBytes int64
	newRequestID func() string
}

// NewHandler adapts a Dispatcher to net/http.
//
// For every request it assigns a request ID, buffers the body, dispatches,
// maps errors through the error handler and writes the response. Panics
// raised by handlers are recovered and reported as 500.
func NewHandler(d Dispatcher, opts ...HandlerOption) http.Handler {
	h := &httpHandler{
		dispatcher:   d,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		errorHandler: response.TextErrorHandler,
		maxBodyBytes: DefaultMaxBodyBytes,
		newRequestID: func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *httpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	requestID := r.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = h.newRequestID()
	}
	ctx := WithRequestID(r.Context(), requestID)
	w.Header().Set(RequestIDHeader, requestID)

	resp, err := h.dispatch(ctx, w, r)
	if err != nil {
		resp = h.errorHandler(err)
		if resp == nil {
			resp = response.TextErrorHandler(err)
		}
	}

	written := h.write(w, r, resp)

	attrs := []slog.Attr{
		logger.Component("server"),
		logger.Event("request"),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.StatusCode(resp.StatusCode()),
		logger.BytesOut(written),
		logger.Latency(time.Since(start)),
		logger.RequestID(requestID),
	}

	level := slog.LevelInfo
	switch {
	case resp.StatusCode() >= http.StatusInternalServerError:
		level = slog.LevelError
	case resp.StatusCode() >= http.StatusBadRequest:
		level = slog.LevelWarn
	}
	if err != nil {
		attrs = append(attrs, logger.Error(err))
		var pe *PanicError
		if errors.As(err, &pe) {
			attrs = append(attrs, logger.Stack(pe.Stack()))
		}
	}

	h.logger.LogAttrs(ctx, level, "request handled", attrs...)
}

// dispatch converts and dispatches r, turning panics into *PanicError.
func (h *httpHandler) dispatch(ctx context.Context, w http.ResponseWriter, r *http.Request) (resp *handler.Response, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp = nil
			err = &PanicError{value: p, stack: debug.Stack()}
		}
	}()

	req, err := h.convert(w, r)
	if err != nil {
		return nil, err
	}

	resp, err = h.dispatcher.Handle(ctx, req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, ErrNilResponse
	}
	return resp, nil
}

func (h *httpHandler) convert(w http.ResponseWriter, r *http.Request) (*handler.Request, error) {
	method, err := handler.ParseMethod(r.Method)
	if err != nil {
		return nil, response.ErrBadRequest.WithMessage("unsupported request method").WithError(err)
	}

	body, err := h.readBody(w, r)
	if err != nil {
		return nil, err
	}

	// Routes match the escaped path so an encoded '/' stays inside its segment.
	path := r.URL.EscapedPath()
	if path == "" {
		path = "/"
	}

	return &handler.Request{
		Method:   method,
		Path:     path,
		RawQuery: r.URL.RawQuery,
		Proto:    r.Proto,
		Header:   r.Header.Clone(),
		Body:     body,
	}, nil
}

func (h *httpHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}

	src := r.Body
	if h.maxBodyBytes > 0 {
		src = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	body, err := io.ReadAll(src)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, response.ErrRequestEntityTooLarge.WithDetails(map[string]any{
				"limit": tooLarge.Limit,
			})
		}
		return nil, response.ErrBadRequest.WithMessage("failed to read request body").WithError(err)
	}
	return body, nil
}

// write copies resp onto w and returns the number of body bytes written.
// Content-Length is derived from the body unless the handler set it.
func (h *httpHandler) write(w http.ResponseWriter, r *http.Request, resp *handler.Response) int {
	status := resp.StatusCode()
	header := w.Header()
	for k, v := range resp.Header {
		header[k] = append([]string(nil), v...)
	}

	if !bodyAllowed(status) {
		header.Del("Content-Length")
		w.WriteHeader(status)
		return 0
	}

	if header.Get("Content-Length") == "" {
		header.Set("Content-Length", strconv.Itoa(len(resp.Body)))
	}
	w.WriteHeader(status)

	if r.Method == http.MethodHead || len(resp.Body) == 0 {
		return 0
	}

	n, err := w.Write(resp.Body)
	if err != nil {
		h.logger.DebugContext(r.Context(), "failed to write response body",
			logger.Component("server"),
			logger.Error(err),
		)
	}
	return n
}

func bodyAllowed(status int) bool {
	switch {
	case status >= 100 && status < 200:
		return false
	case status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}
	return true
}

type requestIDContextKey struct{}

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// RequestID returns the request ID stored in ctx.
func RequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok && id != ""
}
