package domain

import "time"

// VehicleDailyStat aggregates one vehicle's traffic for one calendar day.
type VehicleDailyStat struct {
	VehicleID      string    `json:"vehicleID"`
	Day            time.Time `json:"day"`
	Views          int64     `json:"views"`
	WhatsAppClicks int64     `json:"whatsappClicks"`
}

// AgencyAnalyticsSummary is the dashboard headline for one agency.
type AgencyAnalyticsSummary struct {
	AgencyID            string `json:"agencyID"`
	TotalVehicles       int    `json:"totalVehicles"`
	ActiveVehicles      int    `json:"activeVehicles"`
	TotalViews          int64  `json:"totalViews"`
	TotalWhatsAppClicks int64  `json:"totalWhatsappClicks"`
}
