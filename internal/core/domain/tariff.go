package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRatePerKg is the flat per-kilogram rate applied when no tariff covers
// a route. This is a business default, not an error condition.
var DefaultRatePerKg = decimal.NewFromFloat(2.0)

// Tariff is the per-route, per-kilogram price used to compute shipment cost.
// At most one active tariff is expected per (origin, destination) pair for any
// point in time; the uniqueness is enforced by the data layer.
type Tariff struct {
	TariffID          string          `json:"tariffID"` // Primary key (UUID)
	OriginCityID      string          `json:"originCityID"`
	DestinationCityID string          `json:"destinationCityID"`
	KgRate            decimal.Decimal `json:"kgRate"`
	// MinWeightKg and VolumeCoefficient are carried on the record for
	// reporting but take no part in cost calculation.
	MinWeightKg       decimal.Decimal `json:"minWeightKg"`
	VolumeCoefficient decimal.Decimal `json:"volumeCoefficient"`
	EffectiveFrom     time.Time       `json:"effectiveFrom"`
	EffectiveUntil    time.Time       `json:"effectiveUntil"`
	IsActive          bool            `json:"isActive"`
	AuditFields
}

// Covers reports whether the tariff window contains the given instant.
func (t *Tariff) Covers(at time.Time) bool {
	return t.IsActive && !at.Before(t.EffectiveFrom) && !at.After(t.EffectiveUntil)
}
