package services

import (
	"github.com/motorlista/vehicle_catalog_app/internal/core/catalog"
	portsrepo "github.com/motorlista/vehicle_catalog_app/internal/core/ports/repositories"
	portssvc "github.com/motorlista/vehicle_catalog_app/internal/core/ports/services"
	"github.com/motorlista/vehicle_catalog_app/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories and the
// configured exchange rate.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	rate := catalog.NewExchangeRate(cfg.ExchangeRateUSD)

	return &portssvc.ServiceContainer{
		Agency:    NewAgencyService(repos.Agency),
		Vehicle:   NewVehicleService(repos.Vehicle, repos.Agency),
		Catalog:   NewCatalogService(repos.Vehicle, repos.Agency, rate),
		Analytics: NewAnalyticsService(repos.Analytics, repos.Vehicle),
		Token:     NewTokenService(cfg),
	}
}
