package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// treasuryService implements portssvc.TreasurySvcFacade.
type treasuryService struct {
	BaseService
	repo portsrepo.TreasuryRepositoryFacade
}

var _ portssvc.TreasurySvcFacade = (*treasuryService)(nil)

// NewTreasuryService creates a new treasury service.
func NewTreasuryService(repo portsrepo.TreasuryRepositoryFacade) portssvc.TreasurySvcFacade {
	return &treasuryService{repo: repo}
}

func (s *treasuryService) CreateCashBox(ctx context.Context, req dto.CreateCashBoxRequest, userID string) (*domain.CashBox, error) {
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	cashBox := domain.CashBox{
		CashBoxID: uuid.NewString(),
		Name:      req.Name,
		Balance:   req.OpeningBalance,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveCashBox(ctx, cashBox); err != nil {
		s.LogError(ctx, err, "Failed to save cash box", "name", req.Name)
		return nil, fmt.Errorf("failed to save cash box: %w", err)
	}
	return &cashBox, nil
}

func (s *treasuryService) GetCashBoxByID(ctx context.Context, cashBoxID string) (*domain.CashBox, error) {
	return s.repo.FindCashBoxByID(ctx, cashBoxID)
}

func (s *treasuryService) ListCashBoxes(ctx context.Context, limit, offset int) ([]domain.CashBox, error) {
	return s.repo.ListCashBoxes(ctx, limit, offset)
}

// AdjustCashBox applies a signed delta to a cash box balance. Withdrawing
// more than the current balance is rejected.
func (s *treasuryService) AdjustCashBox(ctx context.Context, cashBoxID string, delta decimal.Decimal, userID string) (*domain.CashBox, error) {
	if delta.IsZero() {
		return nil, fmt.Errorf("%w: amount cannot be zero", apperrors.ErrValidation)
	}

	cashBox, err := s.repo.FindCashBoxByID(ctx, cashBoxID)
	if err != nil {
		return nil, err
	}
	newBalance := cashBox.Balance.Add(delta)
	if newBalance.IsNegative() {
		return nil, fmt.Errorf("%w: withdrawal exceeds cash box balance %s",
			apperrors.ErrValidation, cashBox.Balance.String())
	}

	now := time.Now()
	if err := s.repo.AdjustCashBoxBalance(ctx, cashBoxID, delta, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to adjust cash box balance", "cash_box_id", cashBoxID)
		return nil, fmt.Errorf("failed to adjust cash box balance: %w", err)
	}

	cashBox.Balance = newBalance
	cashBox.LastUpdatedAt = now
	cashBox.LastUpdatedBy = userID
	s.LogInfo(ctx, "Cash box adjusted", "cash_box_id", cashBoxID, "delta", delta.String())
	return cashBox, nil
}

func (s *treasuryService) CreateBankAccount(ctx context.Context, req dto.CreateBankAccountRequest, userID string) (*domain.BankAccount, error) {
	if req.OpeningBalance.IsNegative() {
		return nil, fmt.Errorf("%w: opening balance cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	account := domain.BankAccount{
		BankAccountID: uuid.NewString(),
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		Balance:       req.OpeningBalance,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveBankAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save bank account", "bank_name", req.BankName)
		return nil, fmt.Errorf("failed to save bank account: %w", err)
	}
	return &account, nil
}

func (s *treasuryService) GetBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	return s.repo.FindBankAccountByID(ctx, bankAccountID)
}

func (s *treasuryService) ListBankAccounts(ctx context.Context, limit, offset int) ([]domain.BankAccount, error) {
	return s.repo.ListBankAccounts(ctx, limit, offset)
}

func (s *treasuryService) AdjustBankAccount(ctx context.Context, bankAccountID string, delta decimal.Decimal, userID string) (*domain.BankAccount, error) {
	if delta.IsZero() {
		return nil, fmt.Errorf("%w: amount cannot be zero", apperrors.ErrValidation)
	}

	account, err := s.repo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}
	newBalance := account.Balance.Add(delta)
	if newBalance.IsNegative() {
		return nil, fmt.Errorf("%w: withdrawal exceeds bank account balance %s",
			apperrors.ErrValidation, account.Balance.String())
	}

	now := time.Now()
	if err := s.repo.AdjustBankAccountBalance(ctx, bankAccountID, delta, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to adjust bank account balance", "bank_account_id", bankAccountID)
		return nil, fmt.Errorf("failed to adjust bank account balance: %w", err)
	}

	account.Balance = newBalance
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID
	return account, nil
}
