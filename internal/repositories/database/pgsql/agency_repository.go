package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/motorlista/vehicle_catalog_app/internal/apperrors"
	"github.com/motorlista/vehicle_catalog_app/internal/core/domain"
	portsrepo "github.com/motorlista/vehicle_catalog_app/internal/core/ports/repositories"
	"github.com/motorlista/vehicle_catalog_app/internal/models"
	"github.com/motorlista/vehicle_catalog_app/internal/utils/mapping"
)

type PgxAgencyRepository struct {
	BaseRepository
}

// newPgxAgencyRepository creates a new repository for agency accounts.
func newPgxAgencyRepository(pool *pgxpool.Pool) portsrepo.AgencyRepository {
	return &PgxAgencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AgencyRepository = (*PgxAgencyRepository)(nil)

const agencyColumns = `
	agency_id, username, email, name, password_hash, logo_url, cover_url,
	location, whatsapp, plan, created_at, last_updated_at`

func (r *PgxAgencyRepository) scanAgency(row pgx.Row) (*domain.Agency, error) {
	var m models.Agency
	err := row.Scan(
		&m.AgencyID,
		&m.Username,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.LogoURL,
		&m.CoverURL,
		&m.Location,
		&m.WhatsApp,
		&m.Plan,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	agency := mapping.ToDomainAgency(m)
	return &agency, nil
}

// SaveAgency inserts a new agency account.
func (r *PgxAgencyRepository) SaveAgency(ctx context.Context, agency domain.Agency) error {
	m := mapping.ToModelAgency(agency)

	query := `
		INSERT INTO agencies (
			agency_id, username, email, name, password_hash, logo_url, cover_url,
			location, whatsapp, plan, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		m.AgencyID,
		m.Username,
		m.Email,
		m.Name,
		m.PasswordHash,
		m.LogoURL,
		m.CoverURL,
		m.Location,
		m.WhatsApp,
		m.Plan,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save agency %s: %w", m.AgencyID, err)
	}
	return nil
}

// FindAgencyByID retrieves an agency by its ID.
func (r *PgxAgencyRepository) FindAgencyByID(ctx context.Context, agencyID string) (*domain.Agency, error) {
	query := `SELECT` + agencyColumns + ` FROM agencies WHERE agency_id = $1;`
	agency, err := r.scanAgency(r.Pool.QueryRow(ctx, query, agencyID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find agency %s: %w", agencyID, err)
	}
	return agency, nil
}

// FindAgencyByUsername retrieves an agency by its public username.
func (r *PgxAgencyRepository) FindAgencyByUsername(ctx context.Context, username string) (*domain.Agency, error) {
	query := `SELECT` + agencyColumns + ` FROM agencies WHERE username = $1;`
	agency, err := r.scanAgency(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find agency by username %s: %w", username, err)
	}
	return agency, nil
}

// FindAgencyByEmail retrieves an agency by its login email.
func (r *PgxAgencyRepository) FindAgencyByEmail(ctx context.Context, email string) (*domain.Agency, error) {
	query := `SELECT` + agencyColumns + ` FROM agencies WHERE email = $1;`
	agency, err := r.scanAgency(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find agency by email: %w", err)
	}
	return agency, nil
}

// UpdateAgency persists the current profile state.
func (r *PgxAgencyRepository) UpdateAgency(ctx context.Context, agency domain.Agency) error {
	m := mapping.ToModelAgency(agency)

	query := `
		UPDATE agencies SET
			name = $2,
			logo_url = $3,
			cover_url = $4,
			location = $5,
			whatsapp = $6,
			plan = $7,
			last_updated_at = $8
		WHERE agency_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		m.AgencyID,
		m.Name,
		m.LogoURL,
		m.CoverURL,
		m.Location,
		m.WhatsApp,
		m.Plan,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update agency %s: %w", m.AgencyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
