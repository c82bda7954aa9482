package httpclient

import (
	"context"
	"errors"
	"net/http"
	"sync"
)

// StaticResponse is a canned Response.
type StaticResponse struct {
	Status  int
	Payload []byte
}

func (s *StaticResponse) Body() []byte    { return s.Payload }
func (s *StaticResponse) StatusCode() int { return s.Status }

// ErrSimulated is returned by MockClient when SimulateErrors is set.
var ErrSimulated = errors.New("simulated transport error")

// MockClient is an in-memory Client that records every request it sees.
type MockClient struct {
	SimulateErrors bool

	// OnDo overrides the default 200 "{}" reply.
	OnDo func(ctx context.Context, req *Request) (Response, error)

	mu       sync.Mutex
	requests []Request
}

// NewMockClient creates a mock transport with default behavior.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Do records req and returns the configured reply.
func (m *MockClient) Do(ctx context.Context, req *Request) (Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, *req)
	m.mu.Unlock()

	if m.SimulateErrors {
		return nil, ErrSimulated
	}
	if m.OnDo != nil {
		return m.OnDo(ctx, req)
	}
	return &StaticResponse{Status: http.StatusOK, Payload: []byte("{}")}, nil
}

// Calls returns how many requests have been dispatched.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Requests returns a copy of the recorded requests in dispatch order.
func (m *MockClient) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}

var _ Client = (*MockClient)(nil)
