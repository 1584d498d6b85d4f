package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// Defaults returned for a catalog with no priced listings. A zero ceiling
// would make the price range control unusable.
var (
	defaultMaxPriceUSD = decimal.NewFromInt(50_000)
	defaultMaxPriceARS = decimal.NewFromInt(50_000_000)
)

// Slider ceilings are rounded up to these steps so the derived bound is a
// human-friendly round number instead of an exact maximum.
var (
	boundStepUSD = decimal.NewFromInt(1_000)
	boundStepARS = decimal.NewFromInt(1_000_000)
)

// MaxPrice returns the highest listing price in the snapshot, normalized
// into the given comparison currency and rounded up to a clean boundary
// (nearest 1,000 for USD, nearest 1,000,000 for ARS). Inquire-only listings
// carry no price and are skipped. An empty or fully unpriced snapshot yields
// the fixed default ceiling for the currency.
//
// The result is fully derived from its arguments: callers must recompute it
// whenever the snapshot or the comparison currency changes rather than
// caching it.
func (r ExchangeRate) MaxPrice(vehicles []domain.Vehicle, currency domain.Currency) decimal.Decimal {
	var max decimal.Decimal
	found := false
	for _, v := range vehicles {
		amount, ok := r.NormalizePrice(v.Price, currency)
		if !ok {
			continue
		}
		if !found || amount.GreaterThan(max) {
			max = amount
			found = true
		}
	}
	if !found {
		if currency == domain.CurrencyUSD {
			return defaultMaxPriceUSD
		}
		return defaultMaxPriceARS
	}
	step := boundStepARS
	if currency == domain.CurrencyUSD {
		step = boundStepUSD
	}
	return ceilToStep(max, step)
}

// ConvertRange re-expresses an active price range in a new comparison
// currency. Switching units preserves the user's selection instead of
// resetting it to defaults. This uses Convert's half-up rounding, not the
// clean-boundary rounding of MaxPrice; the two policies are intentionally
// distinct (price comparison versus slider sizing).
func (r ExchangeRate) ConvertRange(min, max decimal.Decimal, from, to domain.Currency) (decimal.Decimal, decimal.Decimal) {
	return r.Convert(min, from, to), r.Convert(max, from, to)
}

// ceilToStep rounds amount up to the nearest multiple of step. Exact
// multiples are kept as-is; non-positive amounts collapse to zero.
func ceilToStep(amount, step decimal.Decimal) decimal.Decimal {
	return amount.Div(step).Ceil().Mul(step)
}
