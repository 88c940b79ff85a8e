package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type tariffRepository struct {
	pool *pgxpool.Pool
}

// NewTariffRepository creates a new repository for route tariffs.
func NewTariffRepository(pool *pgxpool.Pool) portsrepo.TariffRepositoryFacade {
	return &tariffRepository{pool: pool}
}

const tariffColumns = `tariff_id, origin_city_id, destination_city_id, kg_rate, min_weight_kg, volume_coefficient, effective_from, effective_until, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanTariff(row pgx.Row) (*domain.Tariff, error) {
	var t domain.Tariff
	err := row.Scan(
		&t.TariffID,
		&t.OriginCityID,
		&t.DestinationCityID,
		&t.KgRate,
		&t.MinWeightKg,
		&t.VolumeCoefficient,
		&t.EffectiveFrom,
		&t.EffectiveUntil,
		&t.IsActive,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *tariffRepository) SaveTariff(ctx context.Context, tariff domain.Tariff) error {
	query := `
		INSERT INTO tariffs (` + tariffColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		tariff.TariffID, tariff.OriginCityID, tariff.DestinationCityID,
		tariff.KgRate, tariff.MinWeightKg, tariff.VolumeCoefficient,
		tariff.EffectiveFrom, tariff.EffectiveUntil, tariff.IsActive,
		tariff.CreatedAt, tariff.CreatedBy, tariff.LastUpdatedAt, tariff.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save tariff %s: %w", tariff.TariffID, err)
	}
	return nil
}

func (r *tariffRepository) UpdateTariff(ctx context.Context, tariff domain.Tariff) error {
	query := `
		UPDATE tariffs
		SET kg_rate = $2, effective_until = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE tariff_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		tariff.TariffID, tariff.KgRate, tariff.EffectiveUntil, tariff.IsActive,
		tariff.LastUpdatedAt, tariff.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update tariff %s: %w", tariff.TariffID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *tariffRepository) FindTariffByID(ctx context.Context, tariffID string) (*domain.Tariff, error) {
	query := `SELECT ` + tariffColumns + ` FROM tariffs WHERE tariff_id = $1;`
	tariff, err := scanTariff(r.pool.QueryRow(ctx, query, tariffID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find tariff by ID %s: %w", tariffID, err)
	}
	return tariff, nil
}

// FindActiveTariffForRoute returns the active tariff whose effective window
// contains asOf. The most recently effective tariff wins if data drift ever
// leaves more than one candidate.
func (r *tariffRepository) FindActiveTariffForRoute(ctx context.Context, originCityID, destinationCityID string, asOf time.Time) (*domain.Tariff, error) {
	query := `
		SELECT ` + tariffColumns + `
		FROM tariffs
		WHERE origin_city_id = $1
		  AND destination_city_id = $2
		  AND is_active = TRUE
		  AND effective_from <= $3
		  AND effective_until >= $3
		ORDER BY effective_from DESC
		LIMIT 1;
	`
	tariff, err := scanTariff(r.pool.QueryRow(ctx, query, originCityID, destinationCityID, asOf))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find tariff for route %s -> %s: %w", originCityID, destinationCityID, err)
	}
	return tariff, nil
}

func (r *tariffRepository) ListTariffs(ctx context.Context, limit int, offset int) ([]domain.Tariff, error) {
	query := `SELECT ` + tariffColumns + ` FROM tariffs ORDER BY effective_from DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list tariffs: %w", err)
	}
	defer rows.Close()

	tariffs := make([]domain.Tariff, 0)
	for rows.Next() {
		tariff, err := scanTariff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tariff row: %w", err)
		}
		tariffs = append(tariffs, *tariff)
	}
	return tariffs, rows.Err()
}
