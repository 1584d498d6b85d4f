package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/motorlista/vehicle_catalog_app/internal/apperrors"
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	portsrepo "github.com/motorlista/vehicle_catalog_app/internal/core/ports/repositories"
	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
	"github.com/motorlista/vehicle_catalog_app/internal/utils"
)

// agencyService provides business logic for agency accounts.
type agencyService struct {
	agencyRepo portsrepo.AgencyRepository
}

// NewAgencyService creates a new agency service.
func NewAgencyService(agencyRepo portsrepo.AgencyRepository) portssvc.AgencySvcFacade {
	return &agencyService{agencyRepo: agencyRepo}
}

// RegisterAgency creates a new agency account with a hashed password.
func (s *agencyService) RegisterAgency(ctx context.Context, req dto.RegisterAgencyRequest) (*domain.Agency, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.agencyRepo.FindAgencyByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("%w: username '%s' is taken", apperrors.ErrDuplicate, username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if _, err := s.agencyRepo.FindAgencyByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	agency := domain.Agency{
		AgencyID:     uuid.NewString(),
		Username:     username,
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Plan:         domain.Plan(req.Plan),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.agencyRepo.SaveAgency(ctx, agency); err != nil {
		return nil, fmt.Errorf("failed to register agency: %w", err)
	}
	return &agency, nil
}

// AuthenticateAgency verifies login credentials.
func (s *agencyService) AuthenticateAgency(ctx context.Context, email, password string) (*domain.Agency, error) {
	agency, err := s.agencyRepo.FindAgencyByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up agency for login: %w", err)
	}
	if !utils.CheckPasswordHash(password, agency.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return agency, nil
}

// GetAgencyByID retrieves an agency by ID.
func (s *agencyService) GetAgencyByID(ctx context.Context, agencyID string) (*domain.Agency, error) {
	agency, err := s.agencyRepo.FindAgencyByID(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agency by id: %w", err)
	}
	return agency, nil
}

// GetAgencyByUsername retrieves an agency by its public username.
func (s *agencyService) GetAgencyByUsername(ctx context.Context, username string) (*domain.Agency, error) {
	agency, err := s.agencyRepo.FindAgencyByUsername(ctx, strings.ToLower(username))
	if err != nil {
		return nil, fmt.Errorf("failed to get agency by username: %w", err)
	}
	return agency, nil
}

// UpdateAgencyProfile applies the non-nil profile fields.
func (s *agencyService) UpdateAgencyProfile(ctx context.Context, agencyID string, req dto.UpdateAgencyRequest) (*domain.Agency, error) {
	agency, err := s.agencyRepo.FindAgencyByID(ctx, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load agency for update: %w", err)
	}

	if req.Name != nil {
		agency.Name = *req.Name
	}
	if req.LogoURL != nil {
		agency.LogoURL = *req.LogoURL
	}
	if req.CoverURL != nil {
		agency.CoverURL = *req.CoverURL
	}
	if req.Location != nil {
		agency.Location = *req.Location
	}
	if req.WhatsApp != nil {
		agency.WhatsApp = *req.WhatsApp
	}
	agency.LastUpdatedAt = time.Now()

	if err := s.agencyRepo.UpdateAgency(ctx, *agency); err != nil {
		return nil, fmt.Errorf("failed to update agency profile: %w", err)
	}
	return agency, nil
}
