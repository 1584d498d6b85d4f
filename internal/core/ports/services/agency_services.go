package services

import (
	"context"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
)

// AgencyReaderSvc defines read operations for agency data.
type AgencyReaderSvc interface {
	// GetAgencyByID retrieves an agency by its ID.
	GetAgencyByID(ctx context.Context, agencyID string) (*domain.Agency, error)

	// GetAgencyByUsername retrieves an agency by its public username.
	GetAgencyByUsername(ctx context.Context, username string) (*domain.Agency, error)
}

// AgencyWriterSvc defines write operations for agency data.
type AgencyWriterSvc interface {
	// RegisterAgency creates a new agency account.
	RegisterAgency(ctx context.Context, req dto.RegisterAgencyRequest) (*domain.Agency, error)

	// UpdateAgencyProfile updates the caller's own profile fields.
	UpdateAgencyProfile(ctx context.Context, agencyID string, req dto.UpdateAgencyRequest) (*domain.Agency, error)
}

// AgencyAuthenticatorSvc verifies login credentials.
type AgencyAuthenticatorSvc interface {
	// AuthenticateAgency checks email/password and returns the agency on
	// success, apperrors.ErrUnauthorized otherwise.
	AuthenticateAgency(ctx context.Context, email, password string) (*domain.Agency, error)
}

// AgencySvcFacade combines all agency-related service interfaces.
type AgencySvcFacade interface {
	AgencyReaderSvc
	AgencyWriterSvc
	AgencyAuthenticatorSvc
}
