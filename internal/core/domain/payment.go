package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the settlement instrument used for an LTA payment.
type PaymentMethod string

const (
	MethodCash         PaymentMethod = "CASH"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodCheque       PaymentMethod = "CHEQUE"
	MethodMobileMoney  PaymentMethod = "MOBILE_MONEY"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodCheque, MethodMobileMoney:
		return true
	}
	return false
}

// LTAPayment records a settlement against an LTA. The sum of payments for an
// LTA must never exceed its calculated cost.
type LTAPayment struct {
	PaymentID   string          `json:"paymentID"` // Primary key (UUID)
	LTAID       string          `json:"ltaID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      PaymentMethod   `json:"method"`
	// Reference is the unique accounting reference (date + sequence + LTA suffix).
	Reference string  `json:"reference"`
	CashBoxID *string `json:"cashBoxID,omitempty"`
	AuditFields
}
