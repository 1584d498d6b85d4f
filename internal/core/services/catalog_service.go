package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorlista/vehicle_catalog_app/internal/core/catalog"
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	portsrepo "github.com/motorlista/vehicle_catalog_app/internal/core/ports/repositories"
	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
)

// catalogService evaluates the public catalog: it derives the price bound for
// the requested comparison currency, completes the filter state and runs the
// compound filter over the agency's active listings.
type catalogService struct {
	vehicleRepo portsrepo.VehicleRepository
	agencyRepo  portsrepo.AgencyRepository
	rate        catalog.ExchangeRate
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(vehicleRepo portsrepo.VehicleRepository, agencyRepo portsrepo.AgencyRepository, rate catalog.ExchangeRate) portssvc.CatalogSvcFacade {
	return &catalogService{vehicleRepo: vehicleRepo, agencyRepo: agencyRepo, rate: rate}
}

// BrowseCatalog serves one public catalog page.
//
// The bound is derived from the full active snapshot before filtering, so the
// price control always spans every priced listing regardless of the current
// filter. Unset range fields are then filled from that bound and the filter
// is evaluated in a single pass that preserves listing order.
func (s *catalogService) BrowseCatalog(ctx context.Context, username string, query dto.CatalogQuery) (*domain.CatalogPage, error) {
	agency, err := s.agencyRepo.FindAgencyByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load agency catalog: %w", err)
	}

	vehicles, err := s.vehicleRepo.ListActiveVehiclesByAgency(ctx, agency.AgencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active listings: %w", err)
	}

	currency := comparisonCurrency(query.Currency)
	maxPrice := s.rate.MaxPrice(vehicles, currency)
	filter := buildFilter(query, currency, maxPrice)

	return &domain.CatalogPage{
		Agency:   *agency,
		Vehicles: catalog.FilterVehicles(vehicles, filter, s.rate),
		Currency: currency,
		MaxPrice: maxPrice,
		Brands:   catalog.Brands(vehicles),
	}, nil
}

// GetCatalogBounds recomputes the price ceiling for a comparison currency.
// When the caller switches currencies with an active range, the range is
// converted rather than reset; the converted values are returned unclamped so
// the caller can see where the old selection lands against the new ceiling.
func (s *catalogService) GetCatalogBounds(ctx context.Context, username string, query dto.BoundsQuery) (*domain.CatalogBounds, error) {
	agency, err := s.agencyRepo.FindAgencyByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to load agency catalog: %w", err)
	}

	vehicles, err := s.vehicleRepo.ListActiveVehiclesByAgency(ctx, agency.AgencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active listings: %w", err)
	}

	currency := comparisonCurrency(query.Currency)
	bounds := &domain.CatalogBounds{
		Currency: currency,
		MaxPrice: s.rate.MaxPrice(vehicles, currency),
	}

	from := domain.Currency(query.FromCurrency)
	if domain.ValidCurrency(query.FromCurrency) && from != currency &&
		query.PriceMin != nil && query.PriceMax != nil {
		min, max := s.rate.ConvertRange(*query.PriceMin, *query.PriceMax, from, currency)
		bounds.PriceMin = &min
		bounds.PriceMax = &max
	}
	return bounds, nil
}

// comparisonCurrency defaults an absent currency parameter to pesos.
func comparisonCurrency(code string) domain.Currency {
	if domain.ValidCurrency(code) {
		return domain.Currency(code)
	}
	return domain.CurrencyARS
}

// buildFilter completes the bound query into a full filter state. Unset range
// bounds get the widest sensible value so every predicate can be evaluated
// unconditionally.
func buildFilter(query dto.CatalogQuery, currency domain.Currency, maxPrice decimal.Decimal) catalog.Filter {
	f := catalog.Filter{
		Search:       query.Search,
		Kind:         domain.VehicleKind(query.Kind),
		Brand:        query.Brand,
		BodyType:     query.BodyType,
		Transmission: query.Transmission,
		FuelType:     query.FuelType,
		Currency:     currency,
		PriceMax:     maxPrice,
		YearMax:      time.Now().Year() + 1,
		MileageMax:   math.MaxInt32,
	}
	if query.PriceMin != nil {
		f.PriceMin = *query.PriceMin
	}
	if query.PriceMax != nil {
		f.PriceMax = *query.PriceMax
	}
	if query.YearMin != nil {
		f.YearMin = *query.YearMin
	}
	if query.YearMax != nil {
		f.YearMax = *query.YearMax
	}
	if query.MileageMin != nil {
		f.MileageMin = *query.MileageMin
	}
	if query.MileageMax != nil {
		f.MileageMax = *query.MileageMax
	}
	return f
}
