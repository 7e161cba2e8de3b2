package service

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/model"
)

// ProjectPricing derives the displayed subtotal/tax/total from whatever
// the session currently knows. Pure over its input: tax is always
// total - subtotal, rounded half away from zero to two places, and never
// negative. An inconsistent backend pair (gross < net) is clamped to a
// zero tax and logged rather than shown as a negative figure.
func ProjectPricing(p model.Pricing, log *zap.SugaredLogger) dto.PricingView {
	subtotal := p.TotalNet
	if subtotal.IsZero() && !p.SubtotalNet.IsZero() {
		subtotal = p.SubtotalNet
	}
	total := p.TotalGross
	if total.IsZero() {
		// tax not computed yet (pre-address); show net as total
		total = subtotal
	}

	tax := total.Sub(subtotal).Round(2)
	if tax.IsNegative() {
		if log != nil {
			log.Warnw("inconsistent pricing pair, clamping tax to zero",
				"total", total.String(), "subtotal", subtotal.String())
		}
		tax = decimal.Zero
	}

	return dto.PricingView{
		Subtotal: subtotal.Round(2).StringFixed(2),
		Tax:      tax.StringFixed(2),
		Total:    total.Round(2).StringFixed(2),
		Currency: p.Currency,
	}
}

// ProjectProductPricing is the pre-creation projection over static catalog
// data: no tax is known yet, so the net price stands alone.
func ProjectProductPricing(net decimal.Decimal, currency string) dto.PricingView {
	return dto.PricingView{
		Subtotal: net.Round(2).StringFixed(2),
		Tax:      decimal.Zero.StringFixed(2),
		Total:    net.Round(2).StringFixed(2),
		Currency: currency,
	}
}
