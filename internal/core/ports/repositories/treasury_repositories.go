package repositories

import (
	"context"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashBoxRepository manages cash box records and balances.
type CashBoxRepository interface {
	SaveCashBox(ctx context.Context, cashBox domain.CashBox) error
	FindCashBoxByID(ctx context.Context, cashBoxID string) (*domain.CashBox, error)
	ListCashBoxes(ctx context.Context, limit int, offset int) ([]domain.CashBox, error)

	// AdjustCashBoxBalance applies a signed delta to the stored balance.
	AdjustCashBoxBalance(ctx context.Context, cashBoxID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// BankAccountRepository manages bank account records and balances.
type BankAccountRepository interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, limit int, offset int) ([]domain.BankAccount, error)
	AdjustBankAccountBalance(ctx context.Context, bankAccountID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// TreasuryRepositoryFacade combines treasury repository interfaces.
type TreasuryRepositoryFacade interface {
	CashBoxRepository
	BankAccountRepository
}
