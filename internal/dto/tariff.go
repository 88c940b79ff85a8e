package dto

import (
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTariffRequest defines the payload for creating a route tariff.
type CreateTariffRequest struct {
	OriginCityID      string          `json:"originCityID" binding:"required"`
	DestinationCityID string          `json:"destinationCityID" binding:"required"`
	KgRate            decimal.Decimal `json:"kgRate" binding:"required"`
	MinWeightKg       decimal.Decimal `json:"minWeightKg"`
	VolumeCoefficient decimal.Decimal `json:"volumeCoefficient"`
	EffectiveFrom     time.Time       `json:"effectiveFrom" binding:"required"`
	EffectiveUntil    time.Time       `json:"effectiveUntil" binding:"required"`
}

// UpdateTariffRequest defines the payload for updating a tariff.
type UpdateTariffRequest struct {
	KgRate         *decimal.Decimal `json:"kgRate,omitempty"`
	EffectiveUntil *time.Time       `json:"effectiveUntil,omitempty"`
	IsActive       *bool            `json:"isActive,omitempty"`
}

// ListTariffsParams holds query parameters for listing tariffs.
type ListTariffsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// CostQuoteParams holds query parameters for a cost quotation.
type CostQuoteParams struct {
	OriginCityID      string          `form:"originCityID" binding:"required"`
	DestinationCityID string          `form:"destinationCityID" binding:"required"`
	WeightKg          decimal.Decimal `form:"weightKg" binding:"required"`
}

// TariffResponse defines the data returned for a tariff.
type TariffResponse struct {
	TariffID          string          `json:"tariffID"`
	OriginCityID      string          `json:"originCityID"`
	DestinationCityID string          `json:"destinationCityID"`
	KgRate            decimal.Decimal `json:"kgRate"`
	MinWeightKg       decimal.Decimal `json:"minWeightKg"`
	VolumeCoefficient decimal.Decimal `json:"volumeCoefficient"`
	EffectiveFrom     time.Time       `json:"effectiveFrom"`
	EffectiveUntil    time.Time       `json:"effectiveUntil"`
	IsActive          bool            `json:"isActive"`
}

// ListTariffsResponse wraps a list of tariffs.
type ListTariffsResponse struct {
	Tariffs []TariffResponse `json:"tariffs"`
}

// CostQuoteResponse is the result of a cost calculation for a route and weight.
// TariffApplied is false when the flat default rate was used.
type CostQuoteResponse struct {
	OriginCityID      string          `json:"originCityID"`
	DestinationCityID string          `json:"destinationCityID"`
	WeightKg          decimal.Decimal `json:"weightKg"`
	Cost              decimal.Decimal `json:"cost"`
	TariffApplied     bool            `json:"tariffApplied"`
}

// ToTariffResponse converts a domain.Tariff to TariffResponse.
func ToTariffResponse(t *domain.Tariff) TariffResponse {
	return TariffResponse{
		TariffID:          t.TariffID,
		OriginCityID:      t.OriginCityID,
		DestinationCityID: t.DestinationCityID,
		KgRate:            t.KgRate,
		MinWeightKg:       t.MinWeightKg,
		VolumeCoefficient: t.VolumeCoefficient,
		EffectiveFrom:     t.EffectiveFrom,
		EffectiveUntil:    t.EffectiveUntil,
		IsActive:          t.IsActive,
	}
}
