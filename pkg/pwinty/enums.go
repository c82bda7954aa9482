package pwinty

import (
	"fmt"
	"slices"
)

// The vendor's enumerations are closed: decoding or encoding a value outside
// the listed constants fails.

// ShippingMethod is the preferred shipping method of an order.
type ShippingMethod string

const (
	ShippingBudget    ShippingMethod = "Budget"
	ShippingStandard  ShippingMethod = "Standard"
	ShippingExpress   ShippingMethod = "Express"
	ShippingOvernight ShippingMethod = "Overnight"
)

var shippingMethods = []ShippingMethod{ShippingBudget, ShippingStandard, ShippingExpress, ShippingOvernight}

func (m ShippingMethod) IsValid() bool                 { return slices.Contains(shippingMethods, m) }
func (m ShippingMethod) MarshalText() ([]byte, error)  { return marshalEnum(m, shippingMethods) }
func (m *ShippingMethod) UnmarshalText(b []byte) error { return unmarshalEnum(b, shippingMethods, m) }

// Payment selects who is invoiced for an order.
type Payment string

const (
	PaymentInvoiceMe        Payment = "InvoiceMe"
	PaymentInvoiceRecipient Payment = "InvoiceRecipient"
)

var payments = []Payment{PaymentInvoiceMe, PaymentInvoiceRecipient}

func (p Payment) IsValid() bool                 { return slices.Contains(payments, p) }
func (p Payment) MarshalText() ([]byte, error)  { return marshalEnum(p, payments) }
func (p *Payment) UnmarshalText(b []byte) error { return unmarshalEnum(b, payments, p) }

// OrderStatus is reported by the server for orders and images. It is never
// transitioned locally.
type OrderStatus string

const (
	StatusNotYetDownloaded OrderStatus = "NotYetDownloaded"
	StatusNotYetSubmitted  OrderStatus = "NotYetSubmitted"
	StatusSubmitted        OrderStatus = "Submitted"
	StatusAwaitingPayment  OrderStatus = "AwaitingPayment"
	StatusComplete         OrderStatus = "Complete"
	StatusCancelled        OrderStatus = "Cancelled"
)

var orderStatuses = []OrderStatus{
	StatusNotYetDownloaded,
	StatusNotYetSubmitted,
	StatusSubmitted,
	StatusAwaitingPayment,
	StatusComplete,
	StatusCancelled,
}

func (s OrderStatus) IsValid() bool                 { return slices.Contains(orderStatuses, s) }
func (s OrderStatus) MarshalText() ([]byte, error)  { return marshalEnum(s, orderStatuses) }
func (s *OrderStatus) UnmarshalText(b []byte) error { return unmarshalEnum(b, orderStatuses, s) }

// ShippingCarrier is the carrier a shipment was handed to.
type ShippingCarrier string

const (
	CarrierRoyalMail            ShippingCarrier = "RoyalMail"
	CarrierRoyalMailFirstClass  ShippingCarrier = "RoyalMailFirstClass"
	CarrierRoyalMailSecondClass ShippingCarrier = "RoyalMailSecondClass"
	CarrierFedEx                ShippingCarrier = "FedEx"
	CarrierFedExUK              ShippingCarrier = "FedExUK"
	CarrierFedExIntl            ShippingCarrier = "FedExIntl"
	CarrierInterlink            ShippingCarrier = "Interlink"
	CarrierUPS                  ShippingCarrier = "UPS"
	CarrierUpsTwoDay            ShippingCarrier = "UpsTwoDay"
	CarrierUKMail               ShippingCarrier = "UKMail"
	CarrierTNT                  ShippingCarrier = "TNT"
	CarrierParcelForce          ShippingCarrier = "ParcelForce"
	CarrierDHL                  ShippingCarrier = "DHL"
	CarrierUPSMI                ShippingCarrier = "UPSMI"
	CarrierDpdNextDay           ShippingCarrier = "DpdNextDay"
	CarrierEuPostal             ShippingCarrier = "EuPostal"
	CarrierAuPost               ShippingCarrier = "AuPost"
	CarrierAirMail              ShippingCarrier = "AirMail"
	CarrierNotKnown             ShippingCarrier = "NotKnown"
)

var shippingCarriers = []ShippingCarrier{
	CarrierRoyalMail,
	CarrierRoyalMailFirstClass,
	CarrierRoyalMailSecondClass,
	CarrierFedEx,
	CarrierFedExUK,
	CarrierFedExIntl,
	CarrierInterlink,
	CarrierUPS,
	CarrierUpsTwoDay,
	CarrierUKMail,
	CarrierTNT,
	CarrierParcelForce,
	CarrierDHL,
	CarrierUPSMI,
	CarrierDpdNextDay,
	CarrierEuPostal,
	CarrierAuPost,
	CarrierAirMail,
	CarrierNotKnown,
}

func (c ShippingCarrier) IsValid() bool                 { return slices.Contains(shippingCarriers, c) }
func (c ShippingCarrier) MarshalText() ([]byte, error)  { return marshalEnum(c, shippingCarriers) }
func (c *ShippingCarrier) UnmarshalText(b []byte) error { return unmarshalEnum(b, shippingCarriers, c) }

// ImageResizingMethod tells the vendor how to fit an image to the product.
type ImageResizingMethod string

const (
	SizingCrop             ImageResizingMethod = "Crop"
	SizingShrinkToFit      ImageResizingMethod = "ShrinkToFit"
	SizingShrinkToExactFit ImageResizingMethod = "ShrinkToExactFit"
)

var resizingMethods = []ImageResizingMethod{SizingCrop, SizingShrinkToFit, SizingShrinkToExactFit}

func (r ImageResizingMethod) IsValid() bool                 { return slices.Contains(resizingMethods, r) }
func (r ImageResizingMethod) MarshalText() ([]byte, error)  { return marshalEnum(r, resizingMethods) }
func (r *ImageResizingMethod) UnmarshalText(b []byte) error { return unmarshalEnum(b, resizingMethods, r) }

func marshalEnum[T ~string](v T, allowed []T) ([]byte, error) {
	if !slices.Contains(allowed, v) {
		return nil, fmt.Errorf("invalid %T value %q", v, string(v))
	}
	return []byte(v), nil
}

func unmarshalEnum[T ~string](text []byte, allowed []T, dst *T) error {
	v := T(text)
	if !slices.Contains(allowed, v) {
		return fmt.Errorf("unknown %T value %q", v, string(text))
	}
	*dst = v
	return nil
}
