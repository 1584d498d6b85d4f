package models

// Agency is the database row for a registered agency.
type Agency struct {
	AgencyID     string `json:"agencyID"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	LogoURL      string `json:"logoURL"`
	CoverURL     string `json:"coverURL"`
	Location     string `json:"location"`
	WhatsApp     string `json:"whatsapp"`
	Plan         string `json:"plan"`
	AuditFields
}
