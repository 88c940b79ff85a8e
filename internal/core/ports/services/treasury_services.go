package services

import (
	"context"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CashBoxSvc manages cash boxes.
type CashBoxSvc interface {
	CreateCashBox(ctx context.Context, req dto.CreateCashBoxRequest, userID string) (*domain.CashBox, error)
	GetCashBoxByID(ctx context.Context, cashBoxID string) (*domain.CashBox, error)
	ListCashBoxes(ctx context.Context, limit, offset int) ([]domain.CashBox, error)

	// AdjustCashBox applies a signed delta to the box balance. Withdrawals
	// beyond the current balance are rejected.
	AdjustCashBox(ctx context.Context, cashBoxID string, delta decimal.Decimal, userID string) (*domain.CashBox, error)
}

// BankAccountSvc manages bank accounts.
type BankAccountSvc interface {
	CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error)
	GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, limit, offset int) ([]domain.BankAccount, error)
	AdjustBankAccount(ctx context.Context, bankAccountID string, delta decimal.Decimal, userID string) (*domain.BankAccount, error)
}

// TreasurySvcFacade combines treasury service interfaces.
type TreasurySvcFacade interface {
	CashBoxSvc
	BankAccountSvc
}
