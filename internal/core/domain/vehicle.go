package domain

// VehicleKind distinguishes the two catalog verticals.
type VehicleKind string

const (
	KindCar        VehicleKind = "auto"
	KindMotorcycle VehicleKind = "moto"
)

// MileageUnknown marks listings whose mileage was never recorded. Zero is a
// valid mileage (brand-new vehicle) and must not be confused with unknown.
const MileageUnknown = -1

// Vehicle is a single listing in an agency's inventory.
type Vehicle struct {
	VehicleID      string      `json:"vehicleID"`
	AgencyID       string      `json:"agencyID"`
	Brand          string      `json:"brand"`
	Model          string      `json:"model"`
	Year           int         `json:"year"`
	Price          Price       `json:"-"`
	Kind           VehicleKind `json:"kind"`
	BodyType       string      `json:"bodyType"`
	Transmission   string      `json:"transmission"`
	FuelType       string      `json:"fuelType"`
	Color          string      `json:"color"`
	Mileage        int         `json:"mileage"`
	Description    string      `json:"description"`
	Photos         []string    `json:"photos"`
	Active         bool        `json:"active"`
	Views          int64       `json:"views"`
	WhatsAppClicks int64       `json:"whatsappClicks"`
	AuditFields
}
