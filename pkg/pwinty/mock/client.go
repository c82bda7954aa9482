// Package mock provides an in-memory pwinty.API for testing code that
// depends on the Pwinty client.
package mock

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/tournevent/pwinty/pkg/pwinty"
)

// Client is an in-memory Pwinty backend. Orders live only as long as the
// Client; ids are assigned sequentially starting at 1.
type Client struct {
	SimulateErrors bool

	OnCountries   func(ctx context.Context) ([]pwinty.Country, error)
	OnCreateOrder func(ctx context.Context, order *pwinty.OrderCreate) (*pwinty.Order, error)
	OnAddImages   func(ctx context.Context, orderID uint64, images []pwinty.OrderImageAdd) ([]pwinty.OrderImage, error)

	mu          sync.Mutex
	nextOrderID uint64
	nextImageID uint64
	orders      map[uint64]*pwinty.Order
}

// New creates a mock client with default behavior.
func New() *Client {
	return &Client{
		nextOrderID: 1,
		nextImageID: 1,
		orders:      make(map[uint64]*pwinty.Order),
	}
}

func simulatedError() error {
	return &pwinty.APIError{Kind: pwinty.KindTransport, Message: "simulated transport error"}
}

func notFound() error {
	return (&pwinty.APIError{Kind: pwinty.KindResponse, Message: "unexpected response"}).WithStatusCode(http.StatusNotFound)
}

// Countries returns a short fixed list.
func (c *Client) Countries(ctx context.Context) ([]pwinty.Country, error) {
	if c.SimulateErrors {
		return nil, simulatedError()
	}
	if c.OnCountries != nil {
		return c.OnCountries(ctx)
	}
	return []pwinty.Country{
		{Name: "United Kingdom", ISOCode: "GB"},
		{Name: "United States", ISOCode: "US"},
	}, nil
}

// CreateOrder stores a new order in NotYetSubmitted status.
func (c *Client) CreateOrder(ctx context.Context, order *pwinty.OrderCreate) (*pwinty.Order, error) {
	if c.SimulateErrors {
		return nil, simulatedError()
	}
	if c.OnCreateOrder != nil {
		return c.OnCreateOrder(ctx, order)
	}
	if order == nil {
		return nil, &pwinty.APIError{Kind: pwinty.KindInternal, Message: "order is nil"}
	}
	if !order.PreferredShippingMethod.IsValid() {
		return nil, &pwinty.APIError{
			Kind:    pwinty.KindInternal,
			Message: fmt.Sprintf("invalid shipping method %q", order.PreferredShippingMethod),
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	created := &pwinty.Order{
		ID:                      c.nextOrderID,
		Address1:                order.Address1,
		Address2:                order.Address2,
		PostalOrZipCode:         order.PostalOrZipCode,
		CountryCode:             order.CountryCode,
		AddressTownOrCity:       order.AddressTownOrCity,
		RecipientName:           order.RecipientName,
		StateOrCounty:           order.StateOrCounty,
		Status:                  pwinty.StatusNotYetSubmitted,
		Payment:                 pwinty.PaymentInvoiceMe,
		PreferredShippingMethod: order.PreferredShippingMethod,
		MobileTelephone:         order.MobileTelephone,
		PackingSlipURL:          order.PackingSlipURL,
		InvoiceAmountNet:        order.InvoiceAmountNet,
		InvoiceTax:              order.InvoiceTax,
		InvoiceCurrency:         order.InvoiceCurrency,
		Created:                 now,
		LastUpdated:             now,
		CanCancel:               true,
		CanHold:                 true,
		CanUpdateShipping:       true,
		CanUpdateImages:         true,
	}
	if order.Payment != nil {
		created.Payment = *order.Payment
	}
	if order.MerchantOrderID != nil {
		created.MerchantOrderID = pwinty.Ptr(fmt.Sprintf("%d", *order.MerchantOrderID))
	}
	c.orders[created.ID] = created
	c.nextOrderID++

	out := *created
	return &out, nil
}

// GetOrder returns a stored order or a 404 Response error.
func (c *Client) GetOrder(ctx context.Context, orderID uint64) (*pwinty.Order, error) {
	if c.SimulateErrors {
		return nil, simulatedError()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	order, ok := c.orders[orderID]
	if !ok {
		return nil, notFound()
	}
	out := *order
	out.Images = append([]pwinty.OrderImage(nil), order.Images...)
	return &out, nil
}

// AddImages appends images to a stored order, mirroring the real client's
// rejection of an empty list.
func (c *Client) AddImages(ctx context.Context, orderID uint64, images []pwinty.OrderImageAdd) ([]pwinty.OrderImage, error) {
	if len(images) == 0 {
		return nil, (&pwinty.APIError{Kind: pwinty.KindInternal, Message: "adding images"}).WithCause(pwinty.ErrEmptyImageBatch)
	}
	if c.SimulateErrors {
		return nil, simulatedError()
	}
	if c.OnAddImages != nil {
		return c.OnAddImages(ctx, orderID, images)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	order, ok := c.orders[orderID]
	if !ok {
		return nil, notFound()
	}

	result := make([]pwinty.OrderImage, len(images))
	for i, img := range images {
		result[i] = pwinty.OrderImage{
			ID:          c.nextImageID,
			SKU:         img.SKU,
			URL:         img.URL,
			Status:      pwinty.StatusNotYetDownloaded,
			Copies:      img.Copies,
			Sizing:      string(img.Sizing),
			PriceToUser: img.PriceToUser,
			MD5Hash:     img.MD5Hash,
			Attributes:  img.Attributes,
		}
		c.nextImageID++
	}
	order.Images = append(order.Images, result...)
	order.LastUpdated = time.Now().UTC()
	return result, nil
}

var _ pwinty.API = (*Client)(nil)
