package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// openFilter matches everything: ranges wide open, categoricals unset.
func openFilter(currency domain.Currency) Filter {
	return Filter{
		PriceMin:   decimal.Zero,
		PriceMax:   decimal.NewFromInt(1_000_000_000),
		Currency:   currency,
		YearMin:    1900,
		YearMax:    2100,
		MileageMin: 0,
		MileageMax: 10_000_000,
	}
}

func testVehicles() []domain.Vehicle {
	return []domain.Vehicle{
		{
			VehicleID: "v1", Brand: "Toyota", Model: "Corolla", Year: 2020,
			Price: domain.NewPrice(decimal.NewFromInt(1_000_000), domain.CurrencyARS),
			Kind:  domain.KindCar, BodyType: "Sedán", Transmission: "Manual",
			FuelType: "Nafta", Mileage: 45_000,
		},
		{
			VehicleID: "v2", Brand: "Ford", Model: "Ranger", Year: 2018,
			Price: domain.InquirePrice(),
			Kind:  domain.KindCar, BodyType: "Pickup", Transmission: "Automático",
			FuelType: "Diésel", Mileage: 90_000,
		},
		{
			VehicleID: "v3", Brand: "BMW", Model: "X3", Year: 2022,
			Price: domain.NewPrice(decimal.NewFromInt(20_000), domain.CurrencyUSD),
			Kind:  domain.KindCar, BodyType: "SUV", Transmission: "Automático",
			FuelType: "Nafta", Mileage: 0,
		},
	}
}

func ids(vehicles []domain.Vehicle) []string {
	out := make([]string, len(vehicles))
	for i, v := range vehicles {
		out[i] = v.VehicleID
	}
	return out
}

func TestFilterVehiclesOpenFilterKeepsOrder(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)

	got := FilterVehicles(testVehicles(), openFilter(domain.CurrencyARS), rate)
	assert.Equal(t, []string{"v1", "v2", "v3"}, ids(got))
}

func TestFilterVehiclesPriceRangeWithCurrencyNormalization(t *testing.T) {
	// The documented scenario: ARS range [0, 500,000] with rate 1465.
	// Toyota (1,000,000 ARS) is over the range; BMW (20,000 USD →
	// 29,300,000 ARS) is far over it; Ford has no price and stays visible.
	rate := NewExchangeRate(decimal.NewFromInt(1465))
	f := openFilter(domain.CurrencyARS)
	f.PriceMin = decimal.Zero
	f.PriceMax = decimal.NewFromInt(500_000)

	got := FilterVehicles(testVehicles(), f, rate)
	assert.Equal(t, []string{"v2"}, ids(got))
}

func TestFilterVehiclesInquireImmuneToPrice(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)
	f := openFilter(domain.CurrencyUSD)
	f.PriceMin = decimal.NewFromInt(1)
	f.PriceMax = decimal.NewFromInt(2)

	got := FilterVehicles(testVehicles(), f, rate)
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].VehicleID)
}

func TestFilterVehiclesSearchIsCaseInsensitive(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)
	f := openFilter(domain.CurrencyARS)
	f.Search = "ford ran"

	got := FilterVehicles(testVehicles(), f, rate)
	assert.Equal(t, []string{"v2"}, ids(got))

	f.Search = "COROLLA"
	got = FilterVehicles(testVehicles(), f, rate)
	assert.Equal(t, []string{"v1"}, ids(got))
}

func TestFilterVehiclesCategoricalFilters(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)

	cases := []struct {
		name   string
		mutate func(*Filter)
		want   []string
	}{
		{"body type", func(f *Filter) { f.BodyType = "SUV" }, []string{"v3"}},
		{"transmission", func(f *Filter) { f.Transmission = "Automático" }, []string{"v2", "v3"}},
		{"fuel", func(f *Filter) { f.FuelType = "Nafta" }, []string{"v1", "v3"}},
		{"brand", func(f *Filter) { f.Brand = "Toyota" }, []string{"v1"}},
		{"kind no match", func(f *Filter) { f.Kind = domain.KindMotorcycle }, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := openFilter(domain.CurrencyARS)
			tc.mutate(&f)
			assert.Equal(t, tc.want, ids(FilterVehicles(testVehicles(), f, rate)))
		})
	}
}

func TestFilterVehiclesYearRange(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)
	f := openFilter(domain.CurrencyARS)
	f.YearMin = 2019
	f.YearMax = 2021

	got := FilterVehicles(testVehicles(), f, rate)
	assert.Equal(t, []string{"v1"}, ids(got))
}

func TestFilterVehiclesMileage(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)

	f := openFilter(domain.CurrencyARS)
	f.MileageMax = 50_000

	// Zero mileage is a valid value (brand-new), not "unknown".
	got := FilterVehicles(testVehicles(), f, rate)
	assert.Equal(t, []string{"v1", "v3"}, ids(got))

	// Unknown mileage passes vacuously.
	vehicles := testVehicles()
	vehicles[1].Mileage = domain.MileageUnknown
	got = FilterVehicles(vehicles, f, rate)
	assert.Equal(t, []string{"v1", "v2", "v3"}, ids(got))
}

func TestFilterVehiclesMissingCategoricalNeverMatches(t *testing.T) {
	rate := NewExchangeRate(DefaultUSDToARS)
	vehicles := []domain.Vehicle{{VehicleID: "bare", Year: 2020, Price: domain.InquirePrice(), Mileage: 0}}

	f := openFilter(domain.CurrencyARS)
	f.Transmission = "Manual"
	assert.Empty(t, FilterVehicles(vehicles, f, rate))

	// But with no categorical set, the malformed listing still passes.
	assert.Len(t, FilterVehicles(vehicles, openFilter(domain.CurrencyARS), rate), 1)
}

func TestBrands(t *testing.T) {
	vehicles := []domain.Vehicle{
		{Brand: "Toyota"}, {Brand: "BMW"}, {Brand: "Toyota"}, {Brand: ""},
	}
	assert.Equal(t, []string{"BMW", "Toyota"}, Brands(vehicles))
}
