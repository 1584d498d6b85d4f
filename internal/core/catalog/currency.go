// Package catalog implements the pure computations behind the public
// catalog page: currency normalization, derived price bounds and compound
// filter evaluation. Everything here operates on an in-memory snapshot
// passed by the caller and returns new values; no state is kept.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// DefaultUSDToARS is the fixed USD→ARS conversion factor used when no rate
// is configured.
var DefaultUSDToARS = decimal.NewFromInt(1465)

// ExchangeRate converts amounts between the two catalog currencies using a
// single fixed USD→ARS scalar. There are no live rates; the rate is chosen
// once at startup.
type ExchangeRate struct {
	usdToARS decimal.Decimal
}

// NewExchangeRate returns an ExchangeRate for the given USD→ARS factor.
// Non-positive rates fall back to DefaultUSDToARS.
func NewExchangeRate(usdToARS decimal.Decimal) ExchangeRate {
	if usdToARS.LessThanOrEqual(decimal.Zero) {
		usdToARS = DefaultUSDToARS
	}
	return ExchangeRate{usdToARS: usdToARS}
}

// Convert expresses amount, currently in from, in the to currency.
//
// Same-currency conversion returns the amount unchanged, with no rounding.
// ARS→USD divides by the rate and rounds half-up to whole units, so a
// round-trip recovers the original amount within ±1 unit. Zero and negative
// amounts are converted like any other; Convert never fails.
func (r ExchangeRate) Convert(amount decimal.Decimal, from, to domain.Currency) decimal.Decimal {
	if from == to {
		return amount
	}
	if from == domain.CurrencyUSD {
		return amount.Mul(r.usdToARS)
	}
	return amount.DivRound(r.usdToARS, 0)
}

// NormalizePrice expresses a listing price in the target currency. ok is
// false for inquire-only prices: they have no amount and must stay out of
// every numeric comparison without ever being treated as an error.
func (r ExchangeRate) NormalizePrice(p domain.Price, target domain.Currency) (decimal.Decimal, bool) {
	amount, currency, ok := p.Fixed()
	if !ok {
		return decimal.Decimal{}, false
	}
	return r.Convert(amount, currency, target), true
}
