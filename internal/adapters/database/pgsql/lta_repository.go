package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ltaRepository struct {
	pool *pgxpool.Pool
}

// NewLTARepository creates a new repository for air waybills and their status
// history.
func NewLTARepository(pool *pgxpool.Pool) portsrepo.LTARepositoryFacade {
	return &ltaRepository{pool: pool}
}

const ltaColumns = `lta_id, lta_number, tracking_number, qr_payload, origin_city_id, destination_city_id, payment_mode, client_id, weight_kg, package_nature, package_count, calculated_cost, status, shipper_name, consignee_name, created_at, created_by, last_updated_at, last_updated_by`

const insertStatusHistoryQuery = `
	INSERT INTO lta_status_history (history_id, lta_id, previous_status, new_status, changed_by, reason, changed_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7);
`

func scanLTA(row pgx.Row) (*domain.LTA, error) {
	var l domain.LTA
	err := row.Scan(
		&l.LTAID,
		&l.LTANumber,
		&l.TrackingNumber,
		&l.QRPayload,
		&l.OriginCityID,
		&l.DestinationCityID,
		&l.PaymentMode,
		&l.ClientID,
		&l.WeightKg,
		&l.PackageNature,
		&l.PackageCount,
		&l.CalculatedCost,
		&l.Status,
		&l.ShipperName,
		&l.ConsigneeName,
		&l.CreatedAt,
		&l.CreatedBy,
		&l.LastUpdatedAt,
		&l.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

// SaveLTA inserts the LTA and its initial status history record in one
// database transaction.
func (r *ltaRepository) SaveLTA(ctx context.Context, lta domain.LTA, history domain.LTAStatusHistory) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	ltaQuery := `
		INSERT INTO ltas (` + ltaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err = tx.Exec(ctx, ltaQuery,
		lta.LTAID, lta.LTANumber, lta.TrackingNumber, lta.QRPayload,
		lta.OriginCityID, lta.DestinationCityID, lta.PaymentMode, lta.ClientID,
		lta.WeightKg, lta.PackageNature, lta.PackageCount, lta.CalculatedCost,
		lta.Status, lta.ShipperName, lta.ConsigneeName,
		lta.CreatedAt, lta.CreatedBy, lta.LastUpdatedAt, lta.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert LTA %s: %w", lta.LTAID, err)
	}

	_, err = tx.Exec(ctx, insertStatusHistoryQuery,
		history.HistoryID, history.LTAID, history.PreviousStatus, history.NewStatus,
		history.ChangedBy, history.Reason, history.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert status history for LTA %s: %w", lta.LTAID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction for LTA %s: %w", lta.LTAID, err)
	}
	return nil
}

// UpdateLTAStatus updates the LTA row and appends the status history record
// in one database transaction.
func (r *ltaRepository) UpdateLTAStatus(ctx context.Context, lta domain.LTA, history domain.LTAStatusHistory) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	updateQuery := `
		UPDATE ltas
		SET status = $2, qr_payload = $3, last_updated_at = $4, last_updated_by = $5
		WHERE lta_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		lta.LTAID, lta.Status, lta.QRPayload, lta.LastUpdatedAt, lta.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update LTA %s: %w", lta.LTAID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	_, err = tx.Exec(ctx, insertStatusHistoryQuery,
		history.HistoryID, history.LTAID, history.PreviousStatus, history.NewStatus,
		history.ChangedBy, history.Reason, history.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert status history for LTA %s: %w", lta.LTAID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit status update for LTA %s: %w", lta.LTAID, err)
	}
	return nil
}

func (r *ltaRepository) FindLTAByID(ctx context.Context, ltaID string) (*domain.LTA, error) {
	query := `SELECT ` + ltaColumns + ` FROM ltas WHERE lta_id = $1;`
	lta, err := scanLTA(r.pool.QueryRow(ctx, query, ltaID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find LTA by ID %s: %w", ltaID, err)
	}
	return lta, nil
}

func (r *ltaRepository) FindLTAByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.LTA, error) {
	query := `SELECT ` + ltaColumns + ` FROM ltas WHERE tracking_number = $1;`
	lta, err := scanLTA(r.pool.QueryRow(ctx, query, trackingNumber))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find LTA by tracking number %s: %w", trackingNumber, err)
	}
	return lta, nil
}

func (r *ltaRepository) ListLTAs(ctx context.Context, limit int, offset int, status *domain.LTAStatus) ([]domain.LTA, error) {
	query := `SELECT ` + ltaColumns + ` FROM ltas WHERE ($3::text IS NULL OR status = $3) ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list LTAs: %w", err)
	}
	defer rows.Close()

	ltas := make([]domain.LTA, 0)
	for rows.Next() {
		lta, err := scanLTA(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan LTA row: %w", err)
		}
		ltas = append(ltas, *lta)
	}
	return ltas, rows.Err()
}

func (r *ltaRepository) LTANumberExists(ctx context.Context, ltaNumber string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ltas WHERE lta_number = $1);`, ltaNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check LTA number %s: %w", ltaNumber, err)
	}
	return exists, nil
}

func (r *ltaRepository) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ltas WHERE tracking_number = $1);`, trackingNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check tracking number %s: %w", trackingNumber, err)
	}
	return exists, nil
}

func (r *ltaRepository) FindStatusHistoryByLTAID(ctx context.Context, ltaID string) ([]domain.LTAStatusHistory, error) {
	query := `
		SELECT history_id, lta_id, previous_status, new_status, changed_by, reason, changed_at
		FROM lta_status_history
		WHERE lta_id = $1
		ORDER BY changed_at ASC;
	`
	rows, err := r.pool.Query(ctx, query, ltaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list status history for LTA %s: %w", ltaID, err)
	}
	defer rows.Close()

	history := make([]domain.LTAStatusHistory, 0)
	for rows.Next() {
		var h domain.LTAStatusHistory
		err := rows.Scan(&h.HistoryID, &h.LTAID, &h.PreviousStatus, &h.NewStatus, &h.ChangedBy, &h.Reason, &h.ChangedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan status history row: %w", err)
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
