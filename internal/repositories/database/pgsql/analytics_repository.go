package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	portsrepo "github.com/motorlista/vehicle_catalog_app/internal/core/ports/repositories"
	"github.com/motorlista/vehicle_catalog_app/internal/models"
	"github.com/motorlista/vehicle_catalog_app/internal/utils/mapping"
)

type PgxAnalyticsRepository struct {
	BaseRepository
}

// newPgxAnalyticsRepository creates a new repository for traffic counters.
func newPgxAnalyticsRepository(pool *pgxpool.Pool) portsrepo.AnalyticsRepository {
	return &PgxAnalyticsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AnalyticsRepository = (*PgxAnalyticsRepository)(nil)

// IncrementViews bumps the listing's lifetime view counter and its daily
// bucket in one transaction.
func (r *PgxAnalyticsRepository) IncrementViews(ctx context.Context, vehicleID string, day time.Time) error {
	return r.increment(ctx, vehicleID, day, "views")
}

// IncrementWhatsAppClicks bumps the listing's lifetime click counter and its
// daily bucket in one transaction.
func (r *PgxAnalyticsRepository) IncrementWhatsAppClicks(ctx context.Context, vehicleID string, day time.Time) error {
	return r.increment(ctx, vehicleID, day, "whatsapp_clicks")
}

func (r *PgxAnalyticsRepository) increment(ctx context.Context, vehicleID string, day time.Time, column string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	// column is one of two compile-time constants, never user input.
	lifetime := fmt.Sprintf(`UPDATE vehicles SET %s = %s + 1 WHERE vehicle_id = $1;`, column, column)
	if _, err := tx.Exec(ctx, lifetime, vehicleID); err != nil {
		return fmt.Errorf("failed to increment %s for vehicle %s: %w", column, vehicleID, err)
	}

	daily := fmt.Sprintf(`
		INSERT INTO vehicle_daily_stats (vehicle_id, day, %s)
		VALUES ($1, $2, 1)
		ON CONFLICT (vehicle_id, day) DO UPDATE SET %s = vehicle_daily_stats.%s + 1;
	`, column, column, column)
	if _, err := tx.Exec(ctx, daily, vehicleID, day); err != nil {
		return fmt.Errorf("failed to upsert daily %s for vehicle %s: %w", column, vehicleID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s increment for vehicle %s: %w", column, vehicleID, err)
	}
	return nil
}

// GetAgencySummary aggregates inventory and lifetime traffic totals.
func (r *PgxAnalyticsRepository) GetAgencySummary(ctx context.Context, agencyID string) (*domain.AgencyAnalyticsSummary, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE active),
			COALESCE(SUM(views), 0),
			COALESCE(SUM(whatsapp_clicks), 0)
		FROM vehicles
		WHERE agency_id = $1;
	`
	summary := domain.AgencyAnalyticsSummary{AgencyID: agencyID}
	err := r.Pool.QueryRow(ctx, query, agencyID).Scan(
		&summary.TotalVehicles,
		&summary.ActiveVehicles,
		&summary.TotalViews,
		&summary.TotalWhatsAppClicks,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate analytics for agency %s: %w", agencyID, err)
	}
	return &summary, nil
}

// ListDailyStats returns the listing's daily buckets since the given date,
// oldest first.
func (r *PgxAnalyticsRepository) ListDailyStats(ctx context.Context, vehicleID string, since time.Time) ([]domain.VehicleDailyStat, error) {
	query := `
		SELECT vehicle_id, day, views, whatsapp_clicks
		FROM vehicle_daily_stats
		WHERE vehicle_id = $1 AND day >= $2
		ORDER BY day;
	`
	rows, err := r.Pool.Query(ctx, query, vehicleID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily stats for vehicle %s: %w", vehicleID, err)
	}

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.VehicleDailyStat, error) {
		var stat models.VehicleDailyStat
		err := row.Scan(&stat.VehicleID, &stat.Day, &stat.Views, &stat.WhatsAppClicks)
		return stat, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan daily stats for vehicle %s: %w", vehicleID, err)
	}
	return mapping.ToDomainDailyStats(ms), nil
}
