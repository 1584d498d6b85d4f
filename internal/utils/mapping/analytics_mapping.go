package mapping

import (
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	"github.com/motorlista/vehicle_catalog_app/internal/models"
)

// ToDomainDailyStat converts a daily stats row to the domain representation.
func ToDomainDailyStat(m models.VehicleDailyStat) domain.VehicleDailyStat {
	return domain.VehicleDailyStat{
		VehicleID:      m.VehicleID,
		Day:            m.Day,
		Views:          m.Views,
		WhatsAppClicks: m.WhatsAppClicks,
	}
}

// ToDomainDailyStats converts a slice of rows.
func ToDomainDailyStats(ms []models.VehicleDailyStat) []domain.VehicleDailyStat {
	out := make([]domain.VehicleDailyStat, len(ms))
	for i, m := range ms {
		out[i] = ToDomainDailyStat(m)
	}
	return out
}
