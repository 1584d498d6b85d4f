package mapping

import (
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	"github.com/motorlista/vehicle_catalog_app/internal/models"
)

// ToModelVehicle flattens a domain vehicle into its row representation.
func ToModelVehicle(v domain.Vehicle) models.Vehicle {
	m := models.Vehicle{
		VehicleID:      v.VehicleID,
		AgencyID:       v.AgencyID,
		Brand:          v.Brand,
		Model:          v.Model,
		Year:           v.Year,
		PriceCurrency:  v.Price.CurrencyCode(),
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
		AuditFields:    ToModelAuditFields(v.AuditFields),
	}
	if amount, _, ok := v.Price.Fixed(); ok {
		m.PriceAmount = &amount
	}
	if v.Mileage != domain.MileageUnknown {
		mileage := v.Mileage
		m.Mileage = &mileage
	}
	return m
}

// ToDomainVehicle restores the tagged price and mileage from their nullable
// row columns.
func ToDomainVehicle(m models.Vehicle) domain.Vehicle {
	price := domain.InquirePrice()
	if m.PriceAmount != nil && domain.ValidCurrency(m.PriceCurrency) {
		price = domain.NewPrice(*m.PriceAmount, domain.Currency(m.PriceCurrency))
	}
	mileage := domain.MileageUnknown
	if m.Mileage != nil {
		mileage = *m.Mileage
	}
	return domain.Vehicle{
		VehicleID:      m.VehicleID,
		AgencyID:       m.AgencyID,
		Brand:          m.Brand,
		Model:          m.Model,
		Year:           m.Year,
		Price:          price,
		Kind:           domain.VehicleKind(m.Kind),
		BodyType:       m.BodyType,
		Transmission:   m.Transmission,
		FuelType:       m.FuelType,
		Color:          m.Color,
		Mileage:        mileage,
		Description:    m.Description,
		Photos:         m.Photos,
		Active:         m.Active,
		Views:          m.Views,
		WhatsAppClicks: m.WhatsAppClicks,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVehicles converts a slice of rows.
func ToDomainVehicles(ms []models.Vehicle) []domain.Vehicle {
	out := make([]domain.Vehicle, len(ms))
	for i, m := range ms {
		out[i] = ToDomainVehicle(m)
	}
	return out
}
