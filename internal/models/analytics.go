package models

import "time"

// VehicleDailyStat is the database row for one vehicle's daily counters.
type VehicleDailyStat struct {
	VehicleID      string    `json:"vehicleID"`
	Day            time.Time `json:"day"`
	Views          int64     `json:"views"`
	WhatsAppClicks int64     `json:"whatsappClicks"`
}
