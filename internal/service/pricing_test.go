package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront-gateway/internal/model"
)

func TestProjectPricing(t *testing.T) {
	view := ProjectPricing(model.Pricing{
		TotalNet:   decimal.NewFromFloat(49.99),
		TotalGross: decimal.NewFromFloat(54.24),
		Currency:   "USD",
	}, nil)

	assert.Equal(t, "49.99", view.Subtotal)
	assert.Equal(t, "4.25", view.Tax)
	assert.Equal(t, "54.24", view.Total)
	assert.Equal(t, "USD", view.Currency)
}

func TestProjectPricingBeforeTax(t *testing.T) {
	// no gross yet: the net stands in for the total and tax shows zero
	view := ProjectPricing(model.Pricing{
		TotalNet: decimal.NewFromFloat(49.99),
		Currency: "USD",
	}, nil)

	assert.Equal(t, "49.99", view.Subtotal)
	assert.Equal(t, "0.00", view.Tax)
	assert.Equal(t, "49.99", view.Total)
}

func TestProjectPricingSubtotalFallback(t *testing.T) {
	view := ProjectPricing(model.Pricing{
		SubtotalNet: decimal.NewFromFloat(20.00),
		Currency:    "USD",
	}, nil)

	assert.Equal(t, "20.00", view.Subtotal)
	assert.Equal(t, "20.00", view.Total)
}

func TestProjectPricingClampsNegativeTax(t *testing.T) {
	view := ProjectPricing(model.Pricing{
		TotalNet:   decimal.NewFromFloat(50.00),
		TotalGross: decimal.NewFromFloat(49.00),
		Currency:   "USD",
	}, nil)

	assert.Equal(t, "0.00", view.Tax)
}

func TestProjectPricingRoundsHalfAwayFromZero(t *testing.T) {
	view := ProjectPricing(model.Pricing{
		TotalNet:   decimal.NewFromFloat(10.00),
		TotalGross: decimal.NewFromFloat(10.825),
		Currency:   "USD",
	}, nil)

	assert.Equal(t, "0.83", view.Tax)
}

func TestProjectProductPricing(t *testing.T) {
	view := ProjectProductPricing(decimal.NewFromFloat(49.99), "USD")

	assert.Equal(t, "49.99", view.Subtotal)
	assert.Equal(t, "0.00", view.Tax)
	assert.Equal(t, "49.99", view.Total)
	assert.Equal(t, "USD", view.Currency)
}
