package repositories

import (
	"context"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentReader defines read operations for LTA payments.
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.LTAPayment, error)
	ListPaymentsByLTAID(ctx context.Context, ltaID string) ([]domain.LTAPayment, error)

	// SumPaymentsByLTAID returns the total already paid against an LTA,
	// zero when no payments exist.
	SumPaymentsByLTAID(ctx context.Context, ltaID string) (decimal.Decimal, error)

	// CountPaymentsOnDate supports the daily sequence part of accounting
	// references.
	CountPaymentsOnDate(ctx context.Context, day time.Time) (int, error)
}

// PaymentWriter defines write operations for LTA payments. When the payment
// carries a cash box reference, the cash box balance is credited in the same
// database transaction.
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.LTAPayment) error
}

// PaymentRepositoryFacade combines payment repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
