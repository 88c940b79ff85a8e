package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cityRepository struct {
	pool *pgxpool.Pool
}

// NewCityRepository creates a new repository for city master data.
func NewCityRepository(pool *pgxpool.Pool) portsrepo.CityRepositoryFacade {
	return &cityRepository{pool: pool}
}

const cityColumns = `city_id, name, iata_code, country, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCity(row pgx.Row) (*domain.City, error) {
	var c domain.City
	err := row.Scan(
		&c.CityID,
		&c.Name,
		&c.IATACode,
		&c.Country,
		&c.IsActive,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *cityRepository) SaveCity(ctx context.Context, city domain.City) error {
	query := `
		INSERT INTO cities (` + cityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		city.CityID, city.Name, city.IATACode, city.Country, city.IsActive,
		city.CreatedAt, city.CreatedBy, city.LastUpdatedAt, city.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save city %s: %w", city.CityID, err)
	}
	return nil
}

func (r *cityRepository) UpdateCity(ctx context.Context, city domain.City) error {
	query := `
		UPDATE cities
		SET name = $2, country = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE city_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		city.CityID, city.Name, city.Country, city.IsActive,
		city.LastUpdatedAt, city.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update city %s: %w", city.CityID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *cityRepository) FindCityByID(ctx context.Context, cityID string) (*domain.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities WHERE city_id = $1;`
	city, err := scanCity(r.pool.QueryRow(ctx, query, cityID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find city by ID %s: %w", cityID, err)
	}
	return city, nil
}

func (r *cityRepository) FindCityByIATACode(ctx context.Context, iataCode string) (*domain.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities WHERE iata_code = $1;`
	city, err := scanCity(r.pool.QueryRow(ctx, query, iataCode))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find city by IATA code %s: %w", iataCode, err)
	}
	return city, nil
}

func (r *cityRepository) ListCities(ctx context.Context, limit int, offset int) ([]domain.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	defer rows.Close()

	cities := make([]domain.City, 0)
	for rows.Next() {
		city, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan city row: %w", err)
		}
		cities = append(cities, *city)
	}
	return cities, rows.Err()
}
