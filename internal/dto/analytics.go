package dto

import (
	"time"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// AnalyticsSummaryResponse is the dashboard headline for the caller's agency.
type AnalyticsSummaryResponse struct {
	TotalVehicles       int   `json:"totalVehicles"`
	ActiveVehicles      int   `json:"activeVehicles"`
	TotalViews          int64 `json:"totalViews"`
	TotalWhatsAppClicks int64 `json:"totalWhatsappClicks"`
}

// DailyStatResponse is one day of a vehicle's traffic.
type DailyStatResponse struct {
	Day            time.Time `json:"day"`
	Views          int64     `json:"views"`
	WhatsAppClicks int64     `json:"whatsappClicks"`
}

// ToAnalyticsSummaryResponse converts a domain summary.
func ToAnalyticsSummaryResponse(s *domain.AgencyAnalyticsSummary) AnalyticsSummaryResponse {
	return AnalyticsSummaryResponse{
		TotalVehicles:       s.TotalVehicles,
		ActiveVehicles:      s.ActiveVehicles,
		TotalViews:          s.TotalViews,
		TotalWhatsAppClicks: s.TotalWhatsAppClicks,
	}
}

// ToDailyStatsResponse converts a slice of domain daily stats.
func ToDailyStatsResponse(stats []domain.VehicleDailyStat) []DailyStatResponse {
	out := make([]DailyStatResponse, len(stats))
	for i, s := range stats {
		out[i] = DailyStatResponse{Day: s.Day, Views: s.Views, WhatsAppClicks: s.WhatsAppClicks}
	}
	return out
}
