package services

import (
	"context"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	"github.com/motorlista/vehicle_catalog_app/internal/dto"
)

// CatalogSvcFacade is the public catalog browsing surface: the filter and
// currency-normalization engine applied to one agency's active listings.
type CatalogSvcFacade interface {
	// BrowseCatalog computes the price bound for the requested comparison
	// currency, fills unset filter fields from it, evaluates the compound
	// filter and returns the page. Order of listings is preserved.
	BrowseCatalog(ctx context.Context, username string, query dto.CatalogQuery) (*domain.CatalogPage, error)

	// GetCatalogBounds recomputes the price ceiling for a comparison
	// currency and optionally converts an active range into it.
	GetCatalogBounds(ctx context.Context, username string, query dto.BoundsQuery) (*domain.CatalogBounds, error)
}
