package repositories

import (
	"context"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
)

// CityReader defines read operations for city master data.
type CityReader interface {
	FindCityByID(ctx context.Context, cityID string) (*domain.City, error)
	FindCityByIATACode(ctx context.Context, iataCode string) (*domain.City, error)
	ListCities(ctx context.Context, limit int, offset int) ([]domain.City, error)
}

// CityWriter defines write operations for city master data.
type CityWriter interface {
	SaveCity(ctx context.Context, city domain.City) error
	UpdateCity(ctx context.Context, city domain.City) error
}

// CityRepositoryFacade combines city repository interfaces.
type CityRepositoryFacade interface {
	CityReader
	CityWriter
}
