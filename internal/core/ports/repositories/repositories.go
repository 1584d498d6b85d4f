package repositories

import (
	"context"
	"time"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// VehicleRepository defines the persistence operations for vehicle listings.
type VehicleRepository interface {
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	// ListVehiclesByAgency returns the agency's listings ordered by creation
	// time descending. A non-nil before restricts to rows created strictly
	// earlier (cursor pagination).
	ListVehiclesByAgency(ctx context.Context, agencyID string, limit int, before *time.Time) ([]domain.Vehicle, error)
	// ListActiveVehiclesByAgency returns the public catalog snapshot: every
	// active listing of the agency, newest first.
	ListActiveVehiclesByAgency(ctx context.Context, agencyID string) ([]domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID string) error
	CountVehiclesByAgency(ctx context.Context, agencyID string) (int, error)
}

// AgencyRepository defines the persistence operations for agencies.
type AgencyRepository interface {
	SaveAgency(ctx context.Context, agency domain.Agency) error
	FindAgencyByID(ctx context.Context, agencyID string) (*domain.Agency, error)
	FindAgencyByUsername(ctx context.Context, username string) (*domain.Agency, error)
	FindAgencyByEmail(ctx context.Context, email string) (*domain.Agency, error)
	UpdateAgency(ctx context.Context, agency domain.Agency) error
}

// AnalyticsRepository defines the persistence operations for view/click
// counters and their daily aggregates.
type AnalyticsRepository interface {
	IncrementViews(ctx context.Context, vehicleID string, day time.Time) error
	IncrementWhatsAppClicks(ctx context.Context, vehicleID string, day time.Time) error
	GetAgencySummary(ctx context.Context, agencyID string) (*domain.AgencyAnalyticsSummary, error)
	ListDailyStats(ctx context.Context, vehicleID string, since time.Time) ([]domain.VehicleDailyStat, error)
}

// RepositoryProvider bundles all repositories for service construction.
type RepositoryProvider struct {
	Vehicle   VehicleRepository
	Agency    AgencyRepository
	Analytics AnalyticsRepository
}
