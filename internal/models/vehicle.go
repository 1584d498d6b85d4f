package models

import "github.com/shopspring/decimal"

// Vehicle is the database row for a listing. Inquire-only listings are stored
// with a NULL price_amount and the CONSULTAR currency code; the mapping layer
// restores the tagged domain price from that pair.
type Vehicle struct {
	VehicleID      string           `json:"vehicleID"`
	AgencyID       string           `json:"agencyID"`
	Brand          string           `json:"brand"`
	Model          string           `json:"model"`
	Year           int              `json:"year"`
	PriceAmount    *decimal.Decimal `json:"priceAmount"`
	PriceCurrency  string           `json:"priceCurrency"`
	Kind           string           `json:"kind"`
	BodyType       string           `json:"bodyType"`
	Transmission   string           `json:"transmission"`
	FuelType       string           `json:"fuelType"`
	Color          string           `json:"color"`
	Mileage        *int             `json:"mileage"`
	Description    string           `json:"description"`
	Photos         []string         `json:"photos"`
	Active         bool             `json:"active"`
	Views          int64            `json:"views"`
	WhatsAppClicks int64            `json:"whatsappClicks"`
	AuditFields
}
