package domain

// Plan is the subscription tier of an agency.
type Plan string

const (
	PlanBasic        Plan = "basico"
	PlanProfessional Plan = "profesional"
	PlanPremium      Plan = "premium"
)

// ListingLimit returns the maximum number of listings the plan allows.
// Zero means unlimited.
func (p Plan) ListingLimit() int {
	switch p {
	case PlanBasic:
		return 10
	case PlanProfessional:
		return 50
	default:
		return 0
	}
}

// Valid reports whether p is a known plan.
func (p Plan) Valid() bool {
	switch p {
	case PlanBasic, PlanProfessional, PlanPremium:
		return true
	}
	return false
}

// Agency is a registered tenant owning a vehicle inventory and a public
// catalog page.
type Agency struct {
	AgencyID     string `json:"agencyID"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	LogoURL      string `json:"logoURL,omitempty"`
	CoverURL     string `json:"coverURL,omitempty"`
	Location     string `json:"location,omitempty"`
	WhatsApp     string `json:"whatsapp,omitempty"`
	Plan         Plan   `json:"plan"`
	AuditFields
}
