// Package pwinty is a typed client for the Pwinty v3.0 print-fulfillment
// REST API.
package pwinty

import (
	"context"
)

// API is the set of vendor operations exposed by Client. Callers that want
// to swap in pwinty/mock for tests should depend on this interface.
type API interface {
	// Countries lists the countries the vendor ships to. No credentials are sent.
	Countries(ctx context.Context) ([]Country, error)

	// CreateOrder creates a new order.
	CreateOrder(ctx context.Context, order *OrderCreate) (*Order, error)

	// GetOrder fetches the current snapshot of an order.
	GetOrder(ctx context.Context, orderID uint64) (*Order, error)

	// AddImages adds one or more images to an order and returns the server's
	// view of each, in request order. An empty list is rejected locally.
	AddImages(ctx context.Context, orderID uint64, images []OrderImageAdd) ([]OrderImage, error)
}
