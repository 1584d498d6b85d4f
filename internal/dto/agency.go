package dto

import (
	"time"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
)

// RegisterAgencyRequest defines the data needed to register a new agency.
type RegisterAgencyRequest struct {
	Username string `json:"username" binding:"required,alphanum,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Plan     string `json:"plan" binding:"required,plan"`
}

// LoginRequest defines the credentials for agency login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateAgencyRequest defines the editable profile fields. Nil fields are
// left unchanged.
type UpdateAgencyRequest struct {
	Name     *string `json:"name,omitempty"`
	LogoURL  *string `json:"logoURL,omitempty"`
	CoverURL *string `json:"coverURL,omitempty"`
	Location *string `json:"location,omitempty"`
	WhatsApp *string `json:"whatsapp,omitempty"`
}

// AgencyResponse defines the data returned for an agency.
type AgencyResponse struct {
	AgencyID     string    `json:"agencyID"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logoURL,omitempty"`
	CoverURL     string    `json:"coverURL,omitempty"`
	Location     string    `json:"location,omitempty"`
	WhatsApp     string    `json:"whatsapp,omitempty"`
	Plan         string    `json:"plan"`
	ListingLimit int       `json:"listingLimit"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// AuthResponse is returned on successful register/login.
type AuthResponse struct {
	AccessToken string         `json:"access_token"`
	ExpiresAt   time.Time      `json:"expiresAt"`
	Agency      AgencyResponse `json:"agency"`
}

// ToAgencyResponse converts a domain.Agency to its response DTO.
func ToAgencyResponse(a *domain.Agency) AgencyResponse {
	return AgencyResponse{
		AgencyID:     a.AgencyID,
		Username:     a.Username,
		Email:        a.Email,
		Name:         a.Name,
		LogoURL:      a.LogoURL,
		CoverURL:     a.CoverURL,
		Location:     a.Location,
		WhatsApp:     a.WhatsApp,
		Plan:         string(a.Plan),
		ListingLimit: a.Plan.ListingLimit(),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.LastUpdatedAt,
	}
}
