package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// Filter is the complete filter state for one catalog evaluation. The caller
// (handler/UI layer) owns it and passes it by value on every change.
//
// Empty categorical fields match everything. Range bounds are applied as
// given: the caller is responsible for min ≤ max, in particular for clamping
// after a comparison-currency switch.
type Filter struct {
	// Search is matched case-insensitively against "{brand} {model}".
	Search string

	Kind         domain.VehicleKind
	Brand        string
	BodyType     string
	Transmission string
	FuelType     string

	// PriceMin and PriceMax are expressed in Currency, which may differ
	// from any individual listing's native currency.
	PriceMin decimal.Decimal
	PriceMax decimal.Decimal
	Currency domain.Currency

	YearMin int
	YearMax int

	MileageMin int
	MileageMax int
}

// FilterVehicles returns the listings matching every predicate of f, in the
// same relative order as the input. It is a pure function: the input slice
// is never mutated and the result is freshly allocated.
func FilterVehicles(vehicles []domain.Vehicle, f Filter, rate ExchangeRate) []domain.Vehicle {
	matched := make([]domain.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if matches(v, f, rate) {
			matched = append(matched, v)
		}
	}
	return matched
}

func matches(v domain.Vehicle, f Filter, rate ExchangeRate) bool {
	if f.Search != "" {
		haystack := strings.ToLower(v.Brand + " " + v.Model)
		if !strings.Contains(haystack, strings.ToLower(f.Search)) {
			return false
		}
	}
	// A listing missing a categorical field has the empty string there and
	// can never equal a set filter value; that is not an error condition.
	if f.Kind != "" && v.Kind != f.Kind {
		return false
	}
	if f.Brand != "" && v.Brand != f.Brand {
		return false
	}
	if f.BodyType != "" && v.BodyType != f.BodyType {
		return false
	}
	if f.Transmission != "" && v.Transmission != f.Transmission {
		return false
	}
	if f.FuelType != "" && v.FuelType != f.FuelType {
		return false
	}
	// Inquire-only listings have no price to compare and stay visible no
	// matter how restrictive the range is. Deliberate business rule.
	if amount, ok := rate.NormalizePrice(v.Price, f.Currency); ok {
		if amount.LessThan(f.PriceMin) || amount.GreaterThan(f.PriceMax) {
			return false
		}
	}
	if v.Year < f.YearMin || v.Year > f.YearMax {
		return false
	}
	// Unknown mileage passes vacuously, same policy as unpublished prices.
	if v.Mileage != domain.MileageUnknown {
		if v.Mileage < f.MileageMin || v.Mileage > f.MileageMax {
			return false
		}
	}
	return true
}

// Brands returns the distinct brands present in the snapshot, sorted, for
// the brand select of the filter panel.
func Brands(vehicles []domain.Vehicle) []string {
	seen := make(map[string]struct{}, len(vehicles))
	brands := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Brand == "" {
			continue
		}
		if _, ok := seen[v.Brand]; ok {
			continue
		}
		seen[v.Brand] = struct{}{}
		brands = append(brands, v.Brand)
	}
	sort.Strings(brands)
	return brands
}
