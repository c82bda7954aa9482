package pwinty

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an APIError.
type Kind string

const (
	// KindInternal is a local failure before or after the exchange:
	// invalid header value, JSON encode/decode, caller misuse.
	KindInternal Kind = "internal"
	// KindTransport means the HTTP call itself failed and no response arrived.
	KindTransport Kind = "transport"
	// KindResponse means the server answered with a non-2xx status.
	KindResponse Kind = "response"
)

// APIError is the only error type returned by Client operations.
type APIError struct {
	Kind       Kind
	Message    string
	StatusCode int // set for KindResponse only
	Cause      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if e.Kind == KindResponse {
		msg = fmt.Sprintf("%s: status %d", msg, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("pwinty %s error: %s: %v", e.Kind, msg, e.Cause)
	}
	return fmt.Sprintf("pwinty %s error: %s", e.Kind, msg)
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is matches any APIError of the same kind, so errors.Is(err, ErrTransport)
// works without inspecting the message.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// WithCause adds a cause to the error.
func (e *APIError) WithCause(err error) *APIError {
	e.Cause = err
	return e
}

// WithStatusCode adds an HTTP status code to the error.
func (e *APIError) WithStatusCode(code int) *APIError {
	e.StatusCode = code
	return e
}

// Retryable reports whether a caller may sensibly repeat the call.
// The client itself never retries.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case KindTransport:
		return true
	case KindResponse:
		return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
	default:
		return false
	}
}

func newInternalError(message string) *APIError {
	return &APIError{Kind: KindInternal, Message: message}
}

func newTransportError(cause error) *APIError {
	return &APIError{Kind: KindTransport, Message: "request failed", Cause: cause}
}

func newResponseError(status int) *APIError {
	return (&APIError{Kind: KindResponse, Message: "unexpected response"}).WithStatusCode(status)
}

// Kind sentinels for errors.Is.
var (
	ErrInternal  = &APIError{Kind: KindInternal}
	ErrTransport = &APIError{Kind: KindTransport}
	ErrResponse  = &APIError{Kind: KindResponse}
)

// ErrEmptyImageBatch is the cause of the Internal error returned when
// AddImages is called without images.
var ErrEmptyImageBatch = errors.New("no images to add")

// IsInternal reports whether err is a KindInternal APIError.
func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

// IsTransport reports whether err is a KindTransport APIError.
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// StatusCode returns the HTTP status carried by a KindResponse error,
// or 0 for anything else.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Kind == KindResponse {
		return apiErr.StatusCode
	}
	return 0
}
