package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new repository for LTA payments.
func NewPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &paymentRepository{pool: pool}
}

const paymentColumns = `payment_id, lta_id, amount, payment_date, method, reference, cash_box_id, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (*domain.LTAPayment, error) {
	var p domain.LTAPayment
	err := row.Scan(
		&p.PaymentID,
		&p.LTAID,
		&p.Amount,
		&p.PaymentDate,
		&p.Method,
		&p.Reference,
		&p.CashBoxID,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// SavePayment inserts the payment and, when a cash box is referenced, credits
// its balance in the same database transaction.
func (r *paymentRepository) SavePayment(ctx context.Context, payment domain.LTAPayment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	insertQuery := `
		INSERT INTO lta_payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, insertQuery,
		payment.PaymentID, payment.LTAID, payment.Amount, payment.PaymentDate,
		payment.Method, payment.Reference, payment.CashBoxID,
		payment.CreatedAt, payment.CreatedBy, payment.LastUpdatedAt, payment.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert payment %s: %w", payment.PaymentID, err)
	}

	if payment.CashBoxID != nil && *payment.CashBoxID != "" {
		creditQuery := `
			UPDATE cash_boxes
			SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
			WHERE cash_box_id = $1;
		`
		tag, err := tx.Exec(ctx, creditQuery,
			*payment.CashBoxID, payment.Amount, payment.LastUpdatedAt, payment.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to credit cash box %s: %w", *payment.CashBoxID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

func (r *paymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.LTAPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM lta_payments WHERE payment_id = $1;`
	payment, err := scanPayment(r.pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find payment by ID %s: %w", paymentID, err)
	}
	return payment, nil
}

func (r *paymentRepository) ListPaymentsByLTAID(ctx context.Context, ltaID string) ([]domain.LTAPayment, error) {
	query := `SELECT ` + paymentColumns + ` FROM lta_payments WHERE lta_id = $1 ORDER BY payment_date ASC;`
	rows, err := r.pool.Query(ctx, query, ltaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for LTA %s: %w", ltaID, err)
	}
	defer rows.Close()

	payments := make([]domain.LTAPayment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) SumPaymentsByLTAID(ctx context.Context, ltaID string) (decimal.Decimal, error) {
	var sum decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM lta_payments WHERE lta_id = $1;`
	if err := r.pool.QueryRow(ctx, query, ltaID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payments for LTA %s: %w", ltaID, err)
	}
	return sum, nil
}

func (r *paymentRepository) CountPaymentsOnDate(ctx context.Context, day time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM lta_payments WHERE payment_date::date = $1::date;`
	if err := r.pool.QueryRow(ctx, query, day).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count payments on %s: %w", day.Format("2006-01-02"), err)
	}
	return count, nil
}
