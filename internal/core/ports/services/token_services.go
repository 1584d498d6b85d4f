package services

import (
	"context"
	"time"
)

// TokenSvcFacade issues and validates access tokens for agencies.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the agency and returns
	// it together with its expiry time.
	GenerateAccessToken(ctx context.Context, agencyID string) (string, time.Time, error)
}
