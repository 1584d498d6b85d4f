package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/motorlista/vehicle_catalog_app/internal/apperrors"
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	portsrepo "github.com/motorlista/vehicle_catalog_app/internal/core/ports/repositories"
	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
	"github.com/motorlista/vehicle_catalog_app/internal/utils/pagination"
)

const defaultPageSize = 20

// vehicleService provides business logic for listing management.
type vehicleService struct {
	vehicleRepo portsrepo.VehicleRepository
	agencyRepo  portsrepo.AgencyRepository
}

// NewVehicleService creates a new vehicle service.
func NewVehicleService(vehicleRepo portsrepo.VehicleRepository, agencyRepo portsrepo.AgencyRepository) portssvc.VehicleSvcFacade {
	return &vehicleService{vehicleRepo: vehicleRepo, agencyRepo: agencyRepo}
}

// CreateVehicle publishes a new listing, enforcing the plan's listing limit.
func (s *vehicleService) CreateVehicle(ctx context.Context, agencyID string, req dto.CreateVehicleRequest) (*domain.Vehicle, error) {
	agency, err := s.agencyRepo.FindAgencyByID(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agency for listing creation: %w", err)
	}

	if limit := agency.Plan.ListingLimit(); limit > 0 {
		count, err := s.vehicleRepo.CountVehiclesByAgency(ctx, agencyID)
		if err != nil {
			return nil, fmt.Errorf("failed to count listings for plan limit: %w", err)
		}
		if count >= limit {
			return nil, fmt.Errorf("%w: plan '%s' allows %d listings", apperrors.ErrPlanLimitReached, agency.Plan, limit)
		}
	}

	price, err := buildPrice(req.Currency, req.Price)
	if err != nil {
		return nil, err
	}

	mileage := domain.MileageUnknown
	if req.Mileage != nil {
		mileage = *req.Mileage
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	now := time.Now()
	vehicle := domain.Vehicle{
		VehicleID:    uuid.NewString(),
		AgencyID:     agencyID,
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Price:        price,
		Kind:         domain.VehicleKind(req.Kind),
		BodyType:     req.BodyType,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Color:        req.Color,
		Mileage:      mileage,
		Description:  req.Description,
		Photos:       req.Photos,
		Active:       active,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return &vehicle, nil
}

// GetVehicleByID retrieves a listing.
func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return vehicle, nil
}

// ListMyVehicles returns a cursor-paginated page of the agency's listings.
func (s *vehicleService) ListMyVehicles(ctx context.Context, agencyID string, limit int, nextToken string) ([]domain.Vehicle, string, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultPageSize
	}

	var before *time.Time
	if nextToken != "" {
		cursor, err := pagination.DecodeDateBasedToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		before = &cursor
	}

	// Fetch one extra row to know whether another page exists.
	vehicles, err := s.vehicleRepo.ListVehiclesByAgency(ctx, agencyID, limit+1, before)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list agency listings: %w", err)
	}

	token := ""
	if len(vehicles) > limit {
		vehicles = vehicles[:limit]
		token = pagination.EncodeDateBasedToken(vehicles[limit-1].CreatedAt)
	}
	return vehicles, token, nil
}

// UpdateVehicle applies the non-nil fields of req to a listing owned by the caller.
func (s *vehicleService) UpdateVehicle(ctx context.Context, agencyID, vehicleID string, req dto.UpdateVehicleRequest) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing for update: %w", err)
	}
	if vehicle.AgencyID != agencyID {
		return nil, apperrors.ErrForbidden
	}

	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Currency != nil || req.Price != nil {
		price, err := updatedPrice(vehicle.Price, req.Currency, req.Price)
		if err != nil {
			return nil, err
		}
		vehicle.Price = price
	}
	if req.Kind != nil {
		vehicle.Kind = domain.VehicleKind(*req.Kind)
	}
	if req.BodyType != nil {
		vehicle.BodyType = *req.BodyType
	}
	if req.Transmission != nil {
		vehicle.Transmission = *req.Transmission
	}
	if req.FuelType != nil {
		vehicle.FuelType = *req.FuelType
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.Description != nil {
		vehicle.Description = *req.Description
	}
	if req.Photos != nil {
		vehicle.Photos = *req.Photos
	}
	if req.Active != nil {
		vehicle.Active = *req.Active
	}
	vehicle.LastUpdatedAt = time.Now()

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}
	return vehicle, nil
}

// DeleteVehicle removes a listing owned by the caller.
func (s *vehicleService) DeleteVehicle(ctx context.Context, agencyID, vehicleID string) error {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to load listing for deletion: %w", err)
	}
	if vehicle.AgencyID != agencyID {
		return apperrors.ErrForbidden
	}
	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}

// buildPrice validates the currency/amount pair of a create request.
func buildPrice(currency string, amount *decimal.Decimal) (domain.Price, error) {
	if currency == domain.CurrencyInquire {
		return domain.InquirePrice(), nil
	}
	if !domain.ValidCurrency(currency) {
		return domain.Price{}, fmt.Errorf("%w: unknown currency '%s'", apperrors.ErrValidation, currency)
	}
	if amount == nil {
		return domain.Price{}, fmt.Errorf("%w: price is required for currency %s", apperrors.ErrValidation, currency)
	}
	return domain.NewPrice(*amount, domain.Currency(currency)), nil
}

// updatedPrice merges a partial currency/amount update into the current price.
func updatedPrice(current domain.Price, currency *string, amount *decimal.Decimal) (domain.Price, error) {
	if currency != nil {
		return buildPrice(*currency, coalesceAmount(amount, current))
	}
	// Amount changed but currency kept: only valid for already priced listings.
	_, cur, ok := current.Fixed()
	if !ok {
		return domain.Price{}, fmt.Errorf("%w: cannot set a price without a currency on an inquire-only listing", apperrors.ErrValidation)
	}
	return domain.NewPrice(*amount, cur), nil
}

func coalesceAmount(amount *decimal.Decimal, current domain.Price) *decimal.Decimal {
	if amount != nil {
		return amount
	}
	if existing, _, ok := current.Fixed(); ok {
		return &existing
	}
	return nil
}
