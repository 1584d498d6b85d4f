package services

import (
	"context"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// AnalyticsRecorderSvc records public catalog traffic events.
type AnalyticsRecorderSvc interface {
	// RecordView counts a catalog visit to the listing.
	RecordView(ctx context.Context, vehicleID string) error

	// RecordWhatsAppClick counts a WhatsApp contact click on the listing.
	RecordWhatsAppClick(ctx context.Context, vehicleID string) error
}

// AnalyticsReaderSvc exposes the dashboard analytics for an agency.
type AnalyticsReaderSvc interface {
	// GetAgencySummary returns the caller's inventory and traffic totals.
	GetAgencySummary(ctx context.Context, agencyID string) (*domain.AgencyAnalyticsSummary, error)

	// GetVehicleDailyStats returns the last `days` days of traffic for a
	// listing owned by the caller.
	GetVehicleDailyStats(ctx context.Context, agencyID, vehicleID string, days int) ([]domain.VehicleDailyStat, error)
}

// AnalyticsSvcFacade combines all analytics-related service interfaces.
type AnalyticsSvcFacade interface {
	AnalyticsRecorderSvc
	AnalyticsReaderSvc
}
