package pwinty_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tournevent/pwinty/pkg/pwinty"
)

func TestOrderImageAdd_RoundTripToOrderImage(t *testing.T) {
	add := pwinty.OrderImageAdd{
		SKU:         "FRA-INSTA-40X40",
		URL:         "https://i.imgur.com/4AiXzf8.jpg",
		Copies:      3,
		Sizing:      pwinty.SizingShrinkToFit,
		PriceToUser: pwinty.Ptr(19.99),
		MD5Hash:     pwinty.Ptr("d41d8cd98f00b204e9800998ecf8427e"),
		Attributes:  &pwinty.OrderImageAttributes{Edge: pwinty.Ptr("Mirrored")},
	}

	data, err := json.Marshal(add)
	require.NoError(t, err)

	var img pwinty.OrderImage
	require.NoError(t, json.Unmarshal(data, &img))

	assert.Equal(t, add.SKU, img.SKU)
	assert.Equal(t, add.URL, img.URL)
	assert.Equal(t, add.Copies, img.Copies)
	assert.Equal(t, "ShrinkToFit", img.Sizing)
	require.NotNil(t, img.Attributes)
	assert.Equal(t, "Mirrored", *img.Attributes.Edge)
}

func TestOrderImageAdd_OmitsAbsentFields(t *testing.T) {
	data, err := json.Marshal(pwinty.OrderImageAdd{SKU: "A", URL: "u", Copies: 1, Sizing: pwinty.SizingCrop})
	require.NoError(t, err)

	assert.JSONEq(t, `{"sku":"A","url":"u","copies":1,"sizing":"Crop"}`, string(data))
}

func TestNewOrderCreate(t *testing.T) {
	order := pwinty.NewOrderCreate("Best Customer Ever", "012345", "US", pwinty.ShippingExpress)

	assert.Equal(t, "Best Customer Ever", order.RecipientName)
	assert.Equal(t, "012345", order.PostalOrZipCode)
	assert.Equal(t, "US", order.CountryCode)
	assert.Equal(t, pwinty.ShippingExpress, order.PreferredShippingMethod)
	assert.Nil(t, order.MerchantOrderID)
	assert.Nil(t, order.Payment)
	assert.Nil(t, order.Email)
	assert.Nil(t, order.InvoiceCurrency)
}

func TestEnums_IsValid(t *testing.T) {
	assert.True(t, pwinty.ShippingBudget.IsValid())
	assert.False(t, pwinty.ShippingMethod("budget").IsValid())

	assert.True(t, pwinty.PaymentInvoiceMe.IsValid())
	assert.False(t, pwinty.Payment("").IsValid())

	assert.True(t, pwinty.StatusCancelled.IsValid())
	assert.False(t, pwinty.OrderStatus("Shipped").IsValid())

	assert.True(t, pwinty.CarrierUPSMI.IsValid())
	assert.True(t, pwinty.CarrierNotKnown.IsValid())
	assert.False(t, pwinty.ShippingCarrier("USPS").IsValid())

	assert.True(t, pwinty.SizingShrinkToExactFit.IsValid())
	assert.False(t, pwinty.ImageResizingMethod("Stretch").IsValid())
}

func TestEnums_JSON(t *testing.T) {
	var carrier pwinty.ShippingCarrier
	require.NoError(t, json.Unmarshal([]byte(`"RoyalMailSecondClass"`), &carrier))
	assert.Equal(t, pwinty.CarrierRoyalMailSecondClass, carrier)

	assert.Error(t, json.Unmarshal([]byte(`"Pigeon"`), &carrier))

	data, err := json.Marshal(pwinty.StatusSubmitted)
	require.NoError(t, err)
	assert.Equal(t, `"Submitted"`, string(data))

	_, err = json.Marshal(pwinty.ImageResizingMethod("Stretch"))
	assert.Error(t, err)
}
