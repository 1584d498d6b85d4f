package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/motorlista/vehicle_catalog_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Vehicle:   newPgxVehicleRepository(dbPool),
		Agency:    newPgxAgencyRepository(dbPool),
		Analytics: newPgxAnalyticsRepository(dbPool),
	}
}
