package services

import (
	"context"
	"fmt"
	"time"

	"github.com/motorlista/vehicle_catalog_app/internal/apperrors"
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	portsrepo "github.com/motorlista/vehicle_catalog_app/internal/core/ports/repositories"
	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
)

const (
	defaultStatsDays = 30
	maxStatsDays     = 365
)

// analyticsService records public catalog traffic and serves the dashboard
// aggregates.
type analyticsService struct {
	analyticsRepo portsrepo.AnalyticsRepository
	vehicleRepo   portsrepo.VehicleRepository
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(analyticsRepo portsrepo.AnalyticsRepository, vehicleRepo portsrepo.VehicleRepository) portssvc.AnalyticsSvcFacade {
	return &analyticsService{analyticsRepo: analyticsRepo, vehicleRepo: vehicleRepo}
}

// RecordView counts a catalog visit to the listing under today's UTC date.
func (s *analyticsService) RecordView(ctx context.Context, vehicleID string) error {
	if err := s.analyticsRepo.IncrementViews(ctx, vehicleID, utcDay(time.Now())); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// RecordWhatsAppClick counts a WhatsApp contact click under today's UTC date.
func (s *analyticsService) RecordWhatsAppClick(ctx context.Context, vehicleID string) error {
	if err := s.analyticsRepo.IncrementWhatsAppClicks(ctx, vehicleID, utcDay(time.Now())); err != nil {
		return fmt.Errorf("failed to record whatsapp click: %w", err)
	}
	return nil
}

// GetAgencySummary returns the caller's inventory and traffic totals.
func (s *analyticsService) GetAgencySummary(ctx context.Context, agencyID string) (*domain.AgencyAnalyticsSummary, error) {
	summary, err := s.analyticsRepo.GetAgencySummary(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get analytics summary: %w", err)
	}
	return summary, nil
}

// GetVehicleDailyStats returns the recent daily traffic of a listing owned by
// the caller.
func (s *analyticsService) GetVehicleDailyStats(ctx context.Context, agencyID, vehicleID string, days int) ([]domain.VehicleDailyStat, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load listing for stats: %w", err)
	}
	if vehicle.AgencyID != agencyID {
		return nil, apperrors.ErrForbidden
	}

	if days <= 0 {
		days = defaultStatsDays
	}
	if days > maxStatsDays {
		days = maxStatsDays
	}
	since := utcDay(time.Now()).AddDate(0, 0, -days)

	stats, err := s.analyticsRepo.ListDailyStats(ctx, vehicleID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily stats: %w", err)
	}
	return stats, nil
}

// utcDay truncates a timestamp to its UTC calendar date.
func utcDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
