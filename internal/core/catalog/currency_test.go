package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

func TestConvertSameCurrencyIsExact(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)

	for _, amount := range []int64{0, 1, 999, 1_000_000, -500} {
		d := decimal.NewFromInt(amount)
		assert.True(t, d.Equal(rate.Convert(d, domain.CurrencyARS, domain.CurrencyARS)))
		assert.True(t, d.Equal(rate.Convert(d, domain.CurrencyUSD, domain.CurrencyUSD)))
	}
}

func TestConvertUSDToARSMultipliesByRate(t *testing.T) {
	rate := NewExchangeRate(decimal.NewFromInt(1465))

	got := rate.Convert(decimal.NewFromInt(20_000), domain.CurrencyUSD, domain.CurrencyARS)
	assert.True(t, decimal.NewFromInt(29_300_000).Equal(got), "got %s", got)
}

func TestConvertARSToUSDRoundsToWholeUnits(t *testing.T) {
	rate := NewExchangeRate(decimal.NewFromInt(1465))

	// 50,000,000 / 1465 = 34129.69..., rounds half-up to 34130.
	got := rate.Convert(decimal.NewFromInt(50_000_000), domain.CurrencyARS, domain.CurrencyUSD)
	assert.True(t, decimal.NewFromInt(34_130).Equal(got), "got %s", got)
}

func TestConvertRoundTrip(t *testing.T) {
	rate := NewExchangeRate(decimal.NewFromInt(1465))
	one := decimal.NewFromInt(1)

	// USD→ARS→USD recovers the amount within one whole dollar (the return
	// leg is the only one that rounds).
	for _, amount := range []int64{0, 1, 20_000, 34_130, 999_999} {
		d := decimal.NewFromInt(amount)
		ars := rate.Convert(d, domain.CurrencyUSD, domain.CurrencyARS)
		back := rate.Convert(ars, domain.CurrencyARS, domain.CurrencyUSD)
		assert.True(t, back.Sub(d).Abs().LessThanOrEqual(one), "amount %d round-tripped to %s", amount, back)
	}

	// ARS→USD rounds to whole dollars, so the peso round trip is only exact
	// to within half a rate's worth of pesos.
	halfRate := decimal.NewFromInt(1465).Div(decimal.NewFromInt(2))
	for _, amount := range []int64{0, 1, 7, 999, 1465, 123_456, 50_000_000} {
		d := decimal.NewFromInt(amount)
		usd := rate.Convert(d, domain.CurrencyARS, domain.CurrencyUSD)
		back := rate.Convert(usd, domain.CurrencyUSD, domain.CurrencyARS)
		assert.True(t, back.Sub(d).Abs().LessThanOrEqual(halfRate), "amount %d round-tripped to %s", amount, back)
	}
}

func TestNormalizePriceInquirePropagates(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)

	_, ok := rate.NormalizePrice(domain.InquirePrice(), domain.CurrencyARS)
	assert.False(t, ok)
	_, ok = rate.NormalizePrice(domain.InquirePrice(), domain.CurrencyUSD)
	assert.False(t, ok)
}

func TestNormalizePriceFixed(t *testing.T) {
	rate := NewExchangeRate(decimal.NewFromInt(1465))

	amount, ok := rate.NormalizePrice(domain.NewPrice(decimal.NewFromInt(100), domain.CurrencyUSD), domain.CurrencyARS)
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(146_500).Equal(amount))
}

func TestNewExchangeRateRejectsNonPositive(t *testing.T) {
	rate := NewExchangeRate(decimal.Zero)

	got := rate.Convert(decimal.NewFromInt(1), domain.CurrencyUSD, domain.CurrencyARS)
	assert.True(t, DefaultUSDToARS.Equal(got))
}
