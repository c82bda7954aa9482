package pwinty

import (
	"time"
)

// Optional fields are pointers throughout: nil means the vendor did not
// send the field (inbound) or the caller has no value for it (outbound).
// An empty string is a known empty value, never "absent".

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// Country is a destination the vendor ships to.
type Country struct {
	Name    string `json:"name"`
	ISOCode string `json:"isoCode"`
}

// OrderCreate describes a new order.
// POST /orders
type OrderCreate struct {
	MerchantOrderID         *uint64        `json:"merchantOrderId,omitempty"`
	RecipientName           string         `json:"recipientName"`
	Address1                *string        `json:"address1,omitempty"`
	Address2                *string        `json:"address2,omitempty"`
	AddressTownOrCity       *string        `json:"addressTownOrCity,omitempty"`
	StateOrCounty           *string        `json:"stateOrCounty,omitempty"`
	PostalOrZipCode         string         `json:"postalOrZipCode"`
	CountryCode             string         `json:"countryCode"` // ISO 3166-1 alpha-2
	PreferredShippingMethod ShippingMethod `json:"preferredShippingMethod"`
	Payment                 *Payment       `json:"payment,omitempty"`
	PackingSlipURL          *string        `json:"packingSlipUrl,omitempty"`
	MobileTelephone         *string        `json:"mobileTelephone,omitempty"`
	Email                   *string        `json:"email,omitempty"`
	InvoiceAmountNet        *float64       `json:"invoiceAmountNet,omitempty"`
	InvoiceTax              *float64       `json:"invoiceTax,omitempty"`
	InvoiceCurrency         *string        `json:"invoiceCurrency,omitempty"`
}

// NewOrderCreate fills the required fields and leaves every optional one unset.
func NewOrderCreate(recipientName, postalOrZipCode, countryCode string, method ShippingMethod) *OrderCreate {
	return &OrderCreate{
		RecipientName:           recipientName,
		PostalOrZipCode:         postalOrZipCode,
		CountryCode:             countryCode,
		PreferredShippingMethod: method,
	}
}

// Order is a server-side snapshot of an order.
type Order struct {
	ID                      uint64            `json:"id"`
	Address1                *string           `json:"address1"`
	Address2                *string           `json:"address2"`
	PostalOrZipCode         string            `json:"postalOrZipCode"`
	CountryCode             string            `json:"countryCode"`
	AddressTownOrCity       *string           `json:"addressTownOrCity"`
	RecipientName           string            `json:"recipientName"`
	StateOrCounty           *string           `json:"stateOrCounty"`
	Status                  OrderStatus       `json:"status"`
	Payment                 Payment           `json:"payment"`
	PaymentURL              *string           `json:"paymentUrl"`
	Price                   float64           `json:"price"`
	ShippingInfo            OrderShippingInfo `json:"shippingInfo"`
	Images                  []OrderImage      `json:"images"`
	InvoiceAmountNet        *float64          `json:"invoiceAmountNet"`
	InvoiceTax              *float64          `json:"invoiceTax"`
	InvoiceCurrency         *string           `json:"invoiceCurrency"`
	MerchantOrderID         *string           `json:"merchantOrderId"`
	PreferredShippingMethod ShippingMethod    `json:"preferredShippingMethod"`
	MobileTelephone         *string           `json:"mobileTelephone"`
	Created                 time.Time         `json:"created"`
	LastUpdated             time.Time         `json:"lastUpdated"`
	CanCancel               bool              `json:"canCancel"`
	CanHold                 bool              `json:"canHold"`
	CanUpdateShipping       bool              `json:"canUpdateShipping"`
	CanUpdateImages         bool              `json:"canUpdateImages"`
	Tag                     *string           `json:"tag"`
	PackingSlipURL          *string           `json:"packingSlipUrl"`
	ErrorMessage            *string           `json:"errorMessage"`
}

// OrderShippingInfo is the shipping cost and shipments of an order.
type OrderShippingInfo struct {
	Price     float64         `json:"price"`
	Shipments []OrderShipment `json:"shipments"`
}

// OrderShipment is one parcel of an order.
type OrderShipment struct {
	Carrier                      ShippingCarrier `json:"carrier"`
	PhotoIDs                     []uint64        `json:"photoIds"`
	ShipmentID                   string          `json:"shipmentId"`
	TrackingNumber               *string         `json:"trackingNumber"`
	TrackingURL                  *string         `json:"trackingUrl"`
	IsTracked                    bool            `json:"isTracked"`
	EarliestEstimatedArrivalDate *time.Time      `json:"earliestEstimatedArrivalDate"`
	LatestEstimatedArrivalDate   *time.Time      `json:"latestEstimatedArrivalDate"`
	ShippedOn                    time.Time       `json:"shippedOn"`
}

// OrderImageAttributes are product-specific options of an image.
type OrderImageAttributes struct {
	SubstrateWeight *string `json:"substrateWeight,omitempty"`
	Frame           *string `json:"frame,omitempty"`
	Edge            *string `json:"edge,omitempty"`
	PaperType       *string `json:"paperType,omitempty"`
	FrameColour     *string `json:"frameColour,omitempty"`
}

// OrderImageAdd adds one image to an order.
// POST /orders/{id}/images, or one element of POST /orders/{id}/images/batch
type OrderImageAdd struct {
	SKU         string                `json:"sku"`
	URL         string                `json:"url"`
	Copies      uint64                `json:"copies"`
	Sizing      ImageResizingMethod   `json:"sizing"`
	PriceToUser *float64              `json:"priceToUser,omitempty"`
	MD5Hash     *string               `json:"md5Hash,omitempty"`
	Attributes  *OrderImageAttributes `json:"attributes,omitempty"`
}

// OrderImage is the server's view of an image on an order.
type OrderImage struct {
	ID           uint64                `json:"id"`
	SKU          string                `json:"sku"`
	URL          string                `json:"url"`
	Status       OrderStatus           `json:"status"`
	Copies       uint64                `json:"copies"`
	Sizing       string                `json:"sizing"` // raw server value, not an ImageResizingMethod
	PriceToUser  *float64              `json:"priceToUser"`
	Price        float64               `json:"price"`
	MD5Hash      *string               `json:"md5Hash"`
	PreviewURL   *string               `json:"previewUrl"`
	ThumbnailURL *string               `json:"thumbnailUrl"`
	Attributes   *OrderImageAttributes `json:"attributes"`
	ErrorMessage *string               `json:"errorMessage"`
}

// Response envelopes.

type countriesEnvelope struct {
	Data []Country `json:"data"`
}

type orderEnvelope struct {
	Data Order `json:"data"`
}

type imageEnvelope struct {
	Data OrderImage `json:"data"`
}

type imagesEnvelope struct {
	Data struct {
		Items []OrderImage `json:"items"`
	} `json:"data"`
}
