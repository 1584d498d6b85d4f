package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/motorlista/vehicle_catalog_app/internal/apperrors"
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	portsrepo "github.com/motorlista/vehicle_catalog_app/internal/core/ports/repositories"
	"github.com/motorlista/vehicle_catalog_app/internal/models"
	"github.com/motorlista/vehicle_catalog_app/internal/utils/mapping"
)

type PgxVehicleRepository struct {
	BaseRepository
}

// newPgxVehicleRepository creates a new repository for vehicle listings.
func newPgxVehicleRepository(pool *pgxpool.Pool) portsrepo.VehicleRepository {
	return &PgxVehicleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VehicleRepository = (*PgxVehicleRepository)(nil)

const vehicleColumns = `
	vehicle_id, agency_id, brand, model, year, price_amount, price_currency,
	kind, body_type, transmission, fuel_type, color, mileage, description,
	photos, active, views, whatsapp_clicks, created_at, last_updated_at`

func scanVehicleRow(row pgx.CollectableRow) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.VehicleID,
		&v.AgencyID,
		&v.Brand,
		&v.Model,
		&v.Year,
		&v.PriceAmount,
		&v.PriceCurrency,
		&v.Kind,
		&v.BodyType,
		&v.Transmission,
		&v.FuelType,
		&v.Color,
		&v.Mileage,
		&v.Description,
		&v.Photos,
		&v.Active,
		&v.Views,
		&v.WhatsAppClicks,
		&v.CreatedAt,
		&v.LastUpdatedAt,
	)
	return v, err
}

// SaveVehicle inserts a new listing.
func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := mapping.ToModelVehicle(vehicle)

	query := `
		INSERT INTO vehicles (
			vehicle_id, agency_id, brand, model, year, price_amount, price_currency,
			kind, body_type, transmission, fuel_type, color, mileage, description,
			photos, active, views, whatsapp_clicks, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.VehicleID,
		m.AgencyID,
		m.Brand,
		m.Model,
		m.Year,
		m.PriceAmount,
		m.PriceCurrency,
		m.Kind,
		m.BodyType,
		m.Transmission,
		m.FuelType,
		m.Color,
		m.Mileage,
		m.Description,
		m.Photos,
		m.Active,
		m.Views,
		m.WhatsAppClicks,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save vehicle %s: %w", m.VehicleID, err)
	}
	return nil
}

// FindVehicleByID retrieves a listing by its ID.
func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT` + vehicleColumns + `
		FROM vehicles
		WHERE vehicle_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicle %s: %w", vehicleID, err)
	}

	m, err := pgx.CollectOneRow(rows, scanVehicleRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}

	vehicle := mapping.ToDomainVehicle(m)
	return &vehicle, nil
}

// ListVehiclesByAgency retrieves the agency's listings newest first, optionally
// restricted to rows created strictly before the cursor.
func (r *PgxVehicleRepository) ListVehiclesByAgency(ctx context.Context, agencyID string, limit int, before *time.Time) ([]domain.Vehicle, error) {
	query := `SELECT` + vehicleColumns + `
		FROM vehicles
		WHERE agency_id = $1 AND ($2::timestamptz IS NULL OR created_at < $2)
		ORDER BY created_at DESC
		LIMIT $3;
	`
	rows, err := r.Pool.Query(ctx, query, agencyID, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles for agency %s: %w", agencyID, err)
	}

	ms, err := pgx.CollectRows(rows, scanVehicleRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan vehicles for agency %s: %w", agencyID, err)
	}
	return mapping.ToDomainVehicles(ms), nil
}

// ListActiveVehiclesByAgency retrieves the public catalog snapshot.
func (r *PgxVehicleRepository) ListActiveVehiclesByAgency(ctx context.Context, agencyID string) ([]domain.Vehicle, error) {
	query := `SELECT` + vehicleColumns + `
		FROM vehicles
		WHERE agency_id = $1 AND active
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, agencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query active vehicles for agency %s: %w", agencyID, err)
	}

	ms, err := pgx.CollectRows(rows, scanVehicleRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan active vehicles for agency %s: %w", agencyID, err)
	}
	return mapping.ToDomainVehicles(ms), nil
}

// UpdateVehicle persists the current state of a listing.
func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	m := mapping.ToModelVehicle(vehicle)

	query := `
		UPDATE vehicles SET
			brand = $2,
			model = $3,
			year = $4,
			price_amount = $5,
			price_currency = $6,
			kind = $7,
			body_type = $8,
			transmission = $9,
			fuel_type = $10,
			color = $11,
			mileage = $12,
			description = $13,
			photos = $14,
			active = $15,
			last_updated_at = $16
		WHERE vehicle_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.VehicleID,
		m.Brand,
		m.Model,
		m.Year,
		m.PriceAmount,
		m.PriceCurrency,
		m.Kind,
		m.BodyType,
		m.Transmission,
		m.FuelType,
		m.Color,
		m.Mileage,
		m.Description,
		m.Photos,
		m.Active,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle %s: %w", m.VehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteVehicle removes a listing and its daily stats (ON DELETE CASCADE).
func (r *PgxVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM vehicles WHERE vehicle_id = $1;`, vehicleID)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle %s: %w", vehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountVehiclesByAgency counts all listings of the agency, active or not.
func (r *PgxVehicleRepository) CountVehiclesByAgency(ctx context.Context, agencyID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles WHERE agency_id = $1;`, agencyID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles for agency %s: %w", agencyID, err)
	}
	return count, nil
}
