package repositories

import (
	"context"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
)

// TariffReader defines read operations for tariffs.
type TariffReader interface {
	FindTariffByID(ctx context.Context, tariffID string) (*domain.Tariff, error)

	// FindActiveTariffForRoute returns the active tariff whose effective
	// window contains asOf for the given route, or apperrors.ErrNotFound.
	// The data layer enforces at most one match per route and window.
	FindActiveTariffForRoute(ctx context.Context, originCityID, destinationCityID string, asOf time.Time) (*domain.Tariff, error)

	ListTariffs(ctx context.Context, limit int, offset int) ([]domain.Tariff, error)
}

// TariffWriter defines write operations for tariffs.
type TariffWriter interface {
	SaveTariff(ctx context.Context, tariff domain.Tariff) error
	UpdateTariff(ctx context.Context, tariff domain.Tariff) error
}

// TariffRepositoryFacade combines tariff repository interfaces.
type TariffRepositoryFacade interface {
	TariffReader
	TariffWriter
}
