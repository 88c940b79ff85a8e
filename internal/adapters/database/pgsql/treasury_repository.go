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

type treasuryRepository struct {
	pool *pgxpool.Pool
}

// NewTreasuryRepository creates a new repository for cash boxes and bank
// accounts.
func NewTreasuryRepository(pool *pgxpool.Pool) portsrepo.TreasuryRepositoryFacade {
	return &treasuryRepository{pool: pool}
}

const cashBoxColumns = `cash_box_id, name, balance, is_active, created_at, created_by, last_updated_at, last_updated_by`
const bankAccountColumns = `bank_account_id, bank_name, account_number, balance, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanCashBox(row pgx.Row) (*domain.CashBox, error) {
	var cb domain.CashBox
	err := row.Scan(
		&cb.CashBoxID,
		&cb.Name,
		&cb.Balance,
		&cb.IsActive,
		&cb.CreatedAt,
		&cb.CreatedBy,
		&cb.LastUpdatedAt,
		&cb.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &cb, nil
}

func scanBankAccount(row pgx.Row) (*domain.BankAccount, error) {
	var ba domain.BankAccount
	err := row.Scan(
		&ba.BankAccountID,
		&ba.BankName,
		&ba.AccountNumber,
		&ba.Balance,
		&ba.IsActive,
		&ba.CreatedAt,
		&ba.CreatedBy,
		&ba.LastUpdatedAt,
		&ba.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &ba, nil
}

func (r *treasuryRepository) SaveCashBox(ctx context.Context, cashBox domain.CashBox) error {
	query := `
		INSERT INTO cash_boxes (` + cashBoxColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		cashBox.CashBoxID, cashBox.Name, cashBox.Balance, cashBox.IsActive,
		cashBox.CreatedAt, cashBox.CreatedBy, cashBox.LastUpdatedAt, cashBox.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save cash box %s: %w", cashBox.CashBoxID, err)
	}
	return nil
}

func (r *treasuryRepository) FindCashBoxByID(ctx context.Context, cashBoxID string) (*domain.CashBox, error) {
	query := `SELECT ` + cashBoxColumns + ` FROM cash_boxes WHERE cash_box_id = $1;`
	cashBox, err := scanCashBox(r.pool.QueryRow(ctx, query, cashBoxID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find cash box by ID %s: %w", cashBoxID, err)
	}
	return cashBox, nil
}

func (r *treasuryRepository) ListCashBoxes(ctx context.Context, limit int, offset int) ([]domain.CashBox, error) {
	query := `SELECT ` + cashBoxColumns + ` FROM cash_boxes ORDER BY name LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash boxes: %w", err)
	}
	defer rows.Close()

	cashBoxes := make([]domain.CashBox, 0)
	for rows.Next() {
		cashBox, err := scanCashBox(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash box row: %w", err)
		}
		cashBoxes = append(cashBoxes, *cashBox)
	}
	return cashBoxes, rows.Err()
}

func (r *treasuryRepository) AdjustCashBoxBalance(ctx context.Context, cashBoxID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE cash_boxes
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE cash_box_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, cashBoxID, delta, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to adjust cash box %s: %w", cashBoxID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *treasuryRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (` + bankAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		account.BankAccountID, account.BankName, account.AccountNumber, account.Balance, account.IsActive,
		account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save bank account %s: %w", account.BankAccountID, err)
	}
	return nil
}

func (r *treasuryRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts WHERE bank_account_id = $1;`
	account, err := scanBankAccount(r.pool.QueryRow(ctx, query, bankAccountID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find bank account by ID %s: %w", bankAccountID, err)
	}
	return account, nil
}

func (r *treasuryRepository) ListBankAccounts(ctx context.Context, limit int, offset int) ([]domain.BankAccount, error) {
	query := `SELECT ` + bankAccountColumns + ` FROM bank_accounts ORDER BY bank_name LIMIT $1 OFFSET $2;`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.BankAccount, 0)
	for rows.Next() {
		account, err := scanBankAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}

func (r *treasuryRepository) AdjustBankAccountBalance(ctx context.Context, bankAccountID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE bank_accounts
		SET balance = balance + $2, last_updated_at = $3, last_updated_by = $4
		WHERE bank_account_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, bankAccountID, delta, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to adjust bank account %s: %w", bankAccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
