package services

import (
	"context"
	"fmt"
	"time"

	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/platform/config"
	"github.com/motorlista/vehicle_catalog_app/internal/utils"
)

// tokenService issues JWT access tokens for agencies.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given agency.
func (s *tokenService) GenerateAccessToken(_ context.Context, agencyID string) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(agencyID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, expiryTime, nil
}
