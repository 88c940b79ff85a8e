package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LTAStatus is the lifecycle state of an air waybill.
type LTAStatus string

const (
	StatusDraft     LTAStatus = "DRAFT"
	StatusConfirmed LTAStatus = "CONFIRMED"
	StatusInTransit LTAStatus = "IN_TRANSIT"
	StatusDelivered LTAStatus = "DELIVERED"
	StatusCancelled LTAStatus = "CANCELLED"
)

// IsValid reports whether s is a known status value.
func (s LTAStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusConfirmed, StatusInTransit, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s LTAStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo enforces the status state machine:
// DRAFT -> CONFIRMED -> IN_TRANSIT -> DELIVERED, with CANCELLED reachable
// from any non-terminal state. DELIVERED and CANCELLED are terminal.
func (s LTAStatus) CanTransitionTo(target LTAStatus) bool {
	if !target.IsValid() || s.IsTerminal() {
		return false
	}
	if target == StatusCancelled {
		return true
	}
	switch s {
	case StatusDraft:
		return target == StatusConfirmed
	case StatusConfirmed:
		return target == StatusInTransit
	case StatusInTransit:
		return target == StatusDelivered
	}
	return false
}

// PaymentMode is how an LTA is to be paid.
type PaymentMode string

const (
	PaymentModeCash      PaymentMode = "CASH"
	PaymentModeToInvoice PaymentMode = "TO_INVOICE"
	PaymentModePortDu    PaymentMode = "PORT_DU" // freight collect, paid by consignee
	PaymentModeFree      PaymentMode = "FREE"
)

// IsValid reports whether m is a known payment mode.
func (m PaymentMode) IsValid() bool {
	switch m {
	case PaymentModeCash, PaymentModeToInvoice, PaymentModePortDu, PaymentModeFree:
		return true
	}
	return false
}

// RequiresClient reports whether an LTA in this mode must reference a client.
func (m PaymentMode) RequiresClient() bool {
	return m == PaymentModeToInvoice
}

// Payable reports whether direct payments can be recorded against this mode.
func (m PaymentMode) Payable() bool {
	return m == PaymentModeCash || m == PaymentModePortDu
}

// LTA (Lettre de Transport Aérien) is the air waybill, the shipment record the
// back office revolves around. Cost is computed once at creation and stored.
type LTA struct {
	LTAID             string          `json:"ltaID"`          // Primary key (UUID)
	LTANumber         string          `json:"ltaNumber"`      // Unique internal document number
	TrackingNumber    string          `json:"trackingNumber"` // Unique public-facing identifier
	QRPayload         string          `json:"qrPayload"`      // Public tracking URL embedding the tracking number
	OriginCityID      string          `json:"originCityID"`
	DestinationCityID string          `json:"destinationCityID"`
	PaymentMode       PaymentMode     `json:"paymentMode"`
	ClientID          *string         `json:"clientID,omitempty"` // Mandatory iff PaymentMode == TO_INVOICE
	WeightKg          decimal.Decimal `json:"weightKg"`
	PackageNature     string          `json:"packageNature"`
	PackageCount      int             `json:"packageCount"`
	CalculatedCost    decimal.Decimal `json:"calculatedCost"`
	Status            LTAStatus       `json:"status"`
	ShipperName       string          `json:"shipperName"`
	ConsigneeName     string          `json:"consigneeName"`
	AuditFields
}

// IsPayable reports whether payments may be recorded against the LTA:
// there must be a positive cost, the LTA must be past DRAFT but not cancelled,
// and the payment mode must be settled directly rather than invoiced.
func (l *LTA) IsPayable() bool {
	if !l.CalculatedCost.IsPositive() {
		return false
	}
	switch l.Status {
	case StatusConfirmed, StatusInTransit, StatusDelivered:
		return l.PaymentMode.Payable()
	}
	return false
}

// LTAStatusHistory is an immutable audit record of a status change, ordered by
// ChangedAt for public tracking display.
type LTAStatusHistory struct {
	HistoryID      string    `json:"historyID"` // Primary key (UUID)
	LTAID          string    `json:"ltaID"`
	PreviousStatus LTAStatus `json:"previousStatus"`
	NewStatus      LTAStatus `json:"newStatus"`
	ChangedBy      string    `json:"changedBy"`
	Reason         string    `json:"reason"`
	ChangedAt      time.Time `json:"changedAt"`
}
