package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	"github.com/motorlista/vehicle_catalog_app/internal/utils"
)

// CreateVehicleRequest defines the data needed to publish a listing.
// Currency CONSULTAR publishes without a price; otherwise Price is required.
type CreateVehicleRequest struct {
	Brand        string           `json:"brand" binding:"required"`
	Model        string           `json:"model" binding:"required"`
	Year         int              `json:"year" binding:"required,gte=1900,lte=2100"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Currency     string           `json:"currency" binding:"required,currencycode"`
	Kind         string           `json:"kind" binding:"required,oneof=auto moto"`
	BodyType     string           `json:"bodyType" binding:"required"`
	Transmission string           `json:"transmission" binding:"required"`
	FuelType     string           `json:"fuelType" binding:"required"`
	Color        string           `json:"color"`
	Mileage      *int             `json:"mileage,omitempty" binding:"omitempty,gte=0"`
	Description  string           `json:"description"`
	Photos       []string         `json:"photos"`
	Active       *bool            `json:"active,omitempty"`
}

// UpdateVehicleRequest defines the editable listing fields. Nil fields are
// left unchanged; changing Currency to CONSULTAR drops the price.
type UpdateVehicleRequest struct {
	Brand        *string          `json:"brand,omitempty"`
	Model        *string          `json:"model,omitempty"`
	Year         *int             `json:"year,omitempty" binding:"omitempty,gte=1900,lte=2100"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	Currency     *string          `json:"currency,omitempty" binding:"omitempty,currencycode"`
	Kind         *string          `json:"kind,omitempty" binding:"omitempty,oneof=auto moto"`
	BodyType     *string          `json:"bodyType,omitempty"`
	Transmission *string          `json:"transmission,omitempty"`
	FuelType     *string          `json:"fuelType,omitempty"`
	Color        *string          `json:"color,omitempty"`
	Mileage      *int             `json:"mileage,omitempty" binding:"omitempty,gte=0"`
	Description  *string          `json:"description,omitempty"`
	Photos       *[]string        `json:"photos,omitempty"`
	Active       *bool            `json:"active,omitempty"`
}

// VehicleResponse defines the data returned for a listing. Price is null and
// Currency is CONSULTAR for inquire-only listings.
type VehicleResponse struct {
	VehicleID      string           `json:"vehicleID"`
	AgencyID       string           `json:"agencyID"`
	Brand          string           `json:"brand"`
	Model          string           `json:"model"`
	Year           int              `json:"year"`
	Price          *decimal.Decimal `json:"price"`
	Currency       string           `json:"currency"`
	PriceLabel     string           `json:"priceLabel"`
	Kind           string           `json:"kind"`
	BodyType       string           `json:"bodyType"`
	Transmission   string           `json:"transmission"`
	FuelType       string           `json:"fuelType"`
	Color          string           `json:"color,omitempty"`
	Mileage        *int             `json:"mileage"`
	Description    string           `json:"description,omitempty"`
	Photos         []string         `json:"photos"`
	Active         bool             `json:"active"`
	Views          int64            `json:"views"`
	WhatsAppClicks int64            `json:"whatsappClicks"`
	WhatsAppURL    string           `json:"whatsappURL,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ListVehiclesResponse is a cursor-paginated page of listings.
type ListVehiclesResponse struct {
	Vehicles  []VehicleResponse `json:"vehicles"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToVehicleResponse converts a domain.Vehicle to its response DTO.
// whatsappURL may be empty when the owning agency has no contact number.
func ToVehicleResponse(v domain.Vehicle, whatsappURL string) VehicleResponse {
	resp := VehicleResponse{
		VehicleID:      v.VehicleID,
		AgencyID:       v.AgencyID,
		Brand:          v.Brand,
		Model:          v.Model,
		Year:           v.Year,
		Currency:       v.Price.CurrencyCode(),
		PriceLabel:     utils.FormatPrice(v.Price),
		Kind:           string(v.Kind),
		BodyType:       v.BodyType,
		Transmission:   v.Transmission,
		FuelType:       v.FuelType,
		Color:          v.Color,
		Description:    v.Description,
		Photos:         v.Photos,
		Active:         v.Active,
		Views:          v.Views,
		WhatsAppClicks: v.WhatsAppClicks,
		WhatsAppURL:    whatsappURL,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.LastUpdatedAt,
	}
	if amount, _, ok := v.Price.Fixed(); ok {
		resp.Price = &amount
	}
	if v.Mileage != domain.MileageUnknown {
		mileage := v.Mileage
		resp.Mileage = &mileage
	}
	if resp.Photos == nil {
		resp.Photos = []string{}
	}
	return resp
}

// ToVehicleResponses converts a slice of domain vehicles without contact links.
func ToVehicleResponses(vehicles []domain.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		out[i] = ToVehicleResponse(v, "")
	}
	return out
}
