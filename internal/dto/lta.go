package dto

import (
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLTARequest defines the payload for creating an air waybill.
// ClientID is mandatory iff PaymentMode is TO_INVOICE; the service enforces it.
type CreateLTARequest struct {
	OriginCityID      string             `json:"originCityID" binding:"required"`
	DestinationCityID string             `json:"destinationCityID" binding:"required"`
	PaymentMode       domain.PaymentMode `json:"paymentMode" binding:"required,paymentmode"`
	ClientID          *string            `json:"clientID,omitempty"`
	WeightKg          decimal.Decimal    `json:"weightKg" binding:"required"`
	PackageNature     string             `json:"packageNature"`
	PackageCount      int                `json:"packageCount" binding:"omitempty,min=1"`
	ShipperName       string             `json:"shipperName"`
	ConsigneeName     string             `json:"consigneeName"`
	// Status lets an import flow create the LTA directly in a non-draft
	// state; when nil the LTA starts in DRAFT.
	Status *domain.LTAStatus `json:"status,omitempty"`
}

// UpdateLTAStatusRequest defines the payload for a status transition.
type UpdateLTAStatusRequest struct {
	Status domain.LTAStatus `json:"status" binding:"required"`
	Reason string           `json:"reason"`
}

// ListLTAsParams holds query parameters for listing LTAs.
type ListLTAsParams struct {
	Limit  int     `form:"limit,default=20"`
	Offset int     `form:"offset,default=0"`
	Status *string `form:"status"`
}

// LTAResponse defines the data returned for an air waybill.
type LTAResponse struct {
	LTAID             string             `json:"ltaID"`
	LTANumber         string             `json:"ltaNumber"`
	TrackingNumber    string             `json:"trackingNumber"`
	QRPayload         string             `json:"qrPayload,omitempty"`
	OriginCityID      string             `json:"originCityID"`
	DestinationCityID string             `json:"destinationCityID"`
	PaymentMode       domain.PaymentMode `json:"paymentMode"`
	ClientID          *string            `json:"clientID,omitempty"`
	WeightKg          decimal.Decimal    `json:"weightKg"`
	PackageNature     string             `json:"packageNature"`
	PackageCount      int                `json:"packageCount"`
	CalculatedCost    decimal.Decimal    `json:"calculatedCost"`
	Status            domain.LTAStatus   `json:"status"`
	ShipperName       string             `json:"shipperName"`
	ConsigneeName     string             `json:"consigneeName"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// CreateLTAResponse is the creation result. PostingWarning is set when the
// LTA was persisted but the accounting entry could not be posted; the LTA
// write is never rolled back for a posting failure.
type CreateLTAResponse struct {
	LTAResponse
	PostingWarning string `json:"postingWarning,omitempty"`
}

// ListLTAsResponse wraps a list of LTAs.
type ListLTAsResponse struct {
	LTAs []LTAResponse `json:"ltas"`
}

// StatusHistoryResponse defines one status change for tracking display.
type StatusHistoryResponse struct {
	PreviousStatus domain.LTAStatus `json:"previousStatus"`
	NewStatus      domain.LTAStatus `json:"newStatus"`
	Reason         string           `json:"reason,omitempty"`
	ChangedAt      time.Time        `json:"changedAt"`
}

// TrackingResponse is the public tracking view of a shipment.
type TrackingResponse struct {
	TrackingNumber string                  `json:"trackingNumber"`
	Status         domain.LTAStatus        `json:"status"`
	History        []StatusHistoryResponse `json:"history"`
}

// ToLTAResponse converts a domain.LTA to LTAResponse.
func ToLTAResponse(l *domain.LTA) LTAResponse {
	return LTAResponse{
		LTAID:             l.LTAID,
		LTANumber:         l.LTANumber,
		TrackingNumber:    l.TrackingNumber,
		QRPayload:         l.QRPayload,
		OriginCityID:      l.OriginCityID,
		DestinationCityID: l.DestinationCityID,
		PaymentMode:       l.PaymentMode,
		ClientID:          l.ClientID,
		WeightKg:          l.WeightKg,
		PackageNature:     l.PackageNature,
		PackageCount:      l.PackageCount,
		CalculatedCost:    l.CalculatedCost,
		Status:            l.Status,
		ShipperName:       l.ShipperName,
		ConsigneeName:     l.ConsigneeName,
		CreatedAt:         l.CreatedAt,
	}
}

// ToStatusHistoryResponses converts history records to their public view.
func ToStatusHistoryResponses(history []domain.LTAStatusHistory) []StatusHistoryResponse {
	responses := make([]StatusHistoryResponse, len(history))
	for i, h := range history {
		responses[i] = StatusHistoryResponse{
			PreviousStatus: h.PreviousStatus,
			NewStatus:      h.NewStatus,
			Reason:         h.Reason,
			ChangedAt:      h.ChangedAt,
		}
	}
	return responses
}
