package repositories

import (
	"context"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
)

// LTAReader defines read operations for air waybills.
type LTAReader interface {
	FindLTAByID(ctx context.Context, ltaID string) (*domain.LTA, error)
	FindLTAByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.LTA, error)
	ListLTAs(ctx context.Context, limit int, offset int, status *domain.LTAStatus) ([]domain.LTA, error)

	// LTANumberExists and TrackingNumberExists support the
	// generate-and-retry-until-unique number allocation at creation time.
	LTANumberExists(ctx context.Context, ltaNumber string) (bool, error)
	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)

	FindStatusHistoryByLTAID(ctx context.Context, ltaID string) ([]domain.LTAStatusHistory, error)
}

// LTAWriter defines write operations for air waybills. Status history rows are
// written in the same database transaction as the LTA mutation.
type LTAWriter interface {
	SaveLTA(ctx context.Context, lta domain.LTA, history domain.LTAStatusHistory) error
	UpdateLTAStatus(ctx context.Context, lta domain.LTA, history domain.LTAStatusHistory) error
}

// LTARepositoryFacade combines LTA repository interfaces.
type LTARepositoryFacade interface {
	LTAReader
	LTAWriter
}
