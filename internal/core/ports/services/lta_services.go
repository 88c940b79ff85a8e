package services

import (
	"context"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
)

// CreateLTAResult carries the persisted LTA together with an optional posting
// warning. The warning is set when the accounting entry could not be posted;
// the LTA creation itself is never rolled back for that.
type CreateLTAResult struct {
	LTA            domain.LTA
	PostingWarning string
}

// LTAReaderSvc defines read operations for air waybills.
type LTAReaderSvc interface {
	GetLTAByID(ctx context.Context, ltaID string) (*domain.LTA, error)
	GetLTAByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.LTA, error)
	ListLTAs(ctx context.Context, params dto.ListLTAsParams) ([]domain.LTA, error)

	// GetStatusHistory returns the ordered, immutable status changes for the
	// shipment identified by its public tracking number.
	GetStatusHistory(ctx context.Context, trackingNumber string) ([]domain.LTAStatusHistory, error)
}

// LTAWriterSvc defines the air-waybill workflow operations.
type LTAWriterSvc interface {
	CreateLTA(ctx context.Context, req dto.CreateLTARequest, creatorUserID string) (*CreateLTAResult, error)
	UpdateStatus(ctx context.Context, ltaID string, req dto.UpdateLTAStatusRequest, userID string) (*domain.LTA, error)
}

// LTASvcFacade combines all LTA-related service interfaces.
type LTASvcFacade interface {
	LTAReaderSvc
	LTAWriterSvc
}
