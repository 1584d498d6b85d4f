package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

func pricedVehicle(brand string, amount int64, currency domain.Currency) domain.Vehicle {
	return domain.Vehicle{
		Brand: brand,
		Price: domain.NewPrice(decimal.NewFromInt(amount), currency),
	}
}

func inquireVehicle(brand string) domain.Vehicle {
	return domain.Vehicle{Brand: brand, Price: domain.InquirePrice()}
}

func TestMaxPriceEmptyCatalogDefaults(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)

	assert.True(t, decimal.NewFromInt(50_000).Equal(rate.MaxPrice(nil, domain.CurrencyUSD)))
	assert.True(t, decimal.NewFromInt(50_000_000).Equal(rate.MaxPrice(nil, domain.CurrencyARS)))
}

func TestMaxPriceIgnoresInquireOnly(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)
	vehicles := []domain.Vehicle{inquireVehicle("Ford"), inquireVehicle("Fiat")}

	// All listings unpriced behaves like an empty catalog.
	assert.True(t, decimal.NewFromInt(50_000_000).Equal(rate.MaxPrice(vehicles, domain.CurrencyARS)))
}

func TestMaxPriceRoundsUpToCleanBoundary(t *testing.T) {
	rate := NewExchangeRate(decimal.NewFromInt(1465))

	vehicles := []domain.Vehicle{
		pricedVehicle("Toyota", 8_350_000, domain.CurrencyARS),
		pricedVehicle("Fiat", 4_000_000, domain.CurrencyARS),
	}

	// ARS: up to the next million.
	got := rate.MaxPrice(vehicles, domain.CurrencyARS)
	assert.True(t, decimal.NewFromInt(9_000_000).Equal(got), "got %s", got)

	// USD: 8,350,000 / 1465 = 5699.6... → 5700, up to the next thousand.
	got = rate.MaxPrice(vehicles, domain.CurrencyUSD)
	assert.True(t, decimal.NewFromInt(6_000).Equal(got), "got %s", got)
}

func TestMaxPriceExactMultipleKept(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)
	vehicles := []domain.Vehicle{pricedVehicle("BMW", 40_000, domain.CurrencyUSD)}

	got := rate.MaxPrice(vehicles, domain.CurrencyUSD)
	assert.True(t, decimal.NewFromInt(40_000).Equal(got), "got %s", got)
}

func TestMaxPriceMonotonic(t *testing.T) {
	rate := NewExchangeRate(decimal.NewFromInt(1465))
	vehicles := []domain.Vehicle{pricedVehicle("Renault", 3_200_000, domain.CurrencyARS)}

	before := rate.MaxPrice(vehicles, domain.CurrencyARS)
	vehicles = append(vehicles, pricedVehicle("BMW", 60_000, domain.CurrencyUSD))
	after := rate.MaxPrice(vehicles, domain.CurrencyARS)

	assert.True(t, after.GreaterThanOrEqual(before), "bound decreased from %s to %s", before, after)
}

func TestConvertRangePreservesSelection(t *testing.T) {
	rate := NewExchangeRate(decimal.NewFromInt(1465))

	min, max := rate.ConvertRange(
		decimal.Zero, decimal.NewFromInt(50_000_000),
		domain.CurrencyARS, domain.CurrencyUSD,
	)
	assert.True(t, decimal.Zero.Equal(min))
	assert.True(t, decimal.NewFromInt(34_130).Equal(max), "got %s", max)
}
