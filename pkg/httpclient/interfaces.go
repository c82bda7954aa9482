// Package httpclient abstracts the HTTP transport used by the Pwinty client
// so callers can inject mocks or a differently configured transport.
package httpclient

import "context"

// Request is a fully assembled outbound HTTP request.
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    []byte // nil means no body
}

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client dispatches a request. An error means no response was received;
// any status code, including non-2xx, is returned as a Response.
type Client interface {
	Do(ctx context.Context, req *Request) (Response, error)
}
