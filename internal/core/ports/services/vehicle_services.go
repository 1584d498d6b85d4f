package services

import (
	"context"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
)

// VehicleReaderSvc defines read operations for vehicle listings.
type VehicleReaderSvc interface {
	// GetVehicleByID retrieves a listing by ID.
	GetVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)

	// ListMyVehicles returns a page of the agency's own listings, newest
	// first, with a cursor token for the next page (empty on the last page).
	ListMyVehicles(ctx context.Context, agencyID string, limit int, nextToken string) ([]domain.Vehicle, string, error)
}

// VehicleWriterSvc defines write operations for vehicle listings.
// All writes are owner-scoped: callers acting on another agency's listing
// get apperrors.ErrForbidden.
type VehicleWriterSvc interface {
	// CreateVehicle publishes a new listing, enforcing the agency plan's
	// listing limit.
	CreateVehicle(ctx context.Context, agencyID string, req dto.CreateVehicleRequest) (*domain.Vehicle, error)

	// UpdateVehicle applies the non-nil fields of req to the listing.
	UpdateVehicle(ctx context.Context, agencyID, vehicleID string, req dto.UpdateVehicleRequest) (*domain.Vehicle, error)

	// DeleteVehicle removes the listing.
	DeleteVehicle(ctx context.Context, agencyID, vehicleID string) error
}

// VehicleSvcFacade combines all vehicle-related service interfaces.
type VehicleSvcFacade interface {
	VehicleReaderSvc
	VehicleWriterSvc
}
