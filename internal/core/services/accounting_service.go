package services

import (
	"context"
	"errors"
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

// accountingService implements portssvc.AccountingSvcFacade.
type accountingService struct {
	BaseService
	repo portsrepo.AccountingRepositoryFacade
}

var _ portssvc.AccountingSvcFacade = (*accountingService)(nil)

// NewAccountingService creates a new accounting service.
func NewAccountingService(repo portsrepo.AccountingRepositoryFacade) portssvc.AccountingSvcFacade {
	return &accountingService{repo: repo}
}

// postingContext resolves the open fiscal year and the accounts a posting
// needs. A missing fiscal year or account yields a warning, not an error;
// postings are skipped rather than blocking the business operation.
func (s *accountingService) postingContext(ctx context.Context, accountNumbers ...string) (*domain.FiscalYear, map[string]*domain.Account, string, error) {
	fy, err := s.repo.FindOpenFiscalYear(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, "no open fiscal year; accounting entry skipped", nil
		}
		return nil, nil, "", fmt.Errorf("failed to resolve open fiscal year: %w", err)
	}

	accounts := make(map[string]*domain.Account, len(accountNumbers))
	for _, number := range accountNumbers {
		account, err := s.repo.FindAccountByNumber(ctx, number)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, fmt.Sprintf("account %s missing from chart of accounts; accounting entry skipped", number), nil
			}
			return nil, nil, "", fmt.Errorf("failed to resolve account %s: %w", number, err)
		}
		accounts[number] = account
	}
	return fy, accounts, "", nil
}

func (s *accountingService) post(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	if !entry.IsBalanced() {
		return nil, fmt.Errorf("%w: journal entry %s is not balanced", apperrors.ErrInternal, entry.EntryID)
	}
	if err := s.repo.SaveJournalEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save journal entry", "entry_id", entry.EntryID)
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}
	s.LogInfo(ctx, "Journal entry posted", "entry_id", entry.EntryID,
		"source_type", string(entry.SourceType), "source_id", entry.SourceID)
	return &entry, nil
}

// PostLTACreation posts the revenue recognition entry for a new LTA:
// debit 411 (clients receivable), credit 701 (freight sales), both for the
// calculated cost.
func (s *accountingService) PostLTACreation(ctx context.Context, lta domain.LTA, userID string) (*domain.JournalEntry, string, error) {
	fy, accounts, warning, err := s.postingContext(ctx, domain.AccountNumberClients, domain.AccountNumberSales)
	if err != nil || warning != "" {
		return nil, warning, err
	}

	now := time.Now()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:      entryID,
		EntryDate:    now,
		Description:  fmt.Sprintf("LTA %s creation", lta.LTANumber),
		FiscalYearID: fy.FiscalYearID,
		SourceType:   domain.SourceLTA,
		SourceID:     lta.LTAID,
		Lines: []domain.JournalLine{
			{
				LineID:    uuid.NewString(),
				EntryID:   entryID,
				AccountID: accounts[domain.AccountNumberClients].AccountID,
				Debit:     lta.CalculatedCost,
				Credit:    decimal.Zero,
			},
			{
				LineID:    uuid.NewString(),
				EntryID:   entryID,
				AccountID: accounts[domain.AccountNumberSales].AccountID,
				Debit:     decimal.Zero,
				Credit:    lta.CalculatedCost,
			},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	posted, err := s.post(ctx, entry)
	if err != nil {
		return nil, "", err
	}
	return posted, "", nil
}

// PostPayment posts the settlement entry for an LTA payment: debit 531 (cash),
// credit 411 (clients receivable), both for the paid amount.
func (s *accountingService) PostPayment(ctx context.Context, payment domain.LTAPayment, ltaNumber string, userID string) (*domain.JournalEntry, string, error) {
	fy, accounts, warning, err := s.postingContext(ctx, domain.AccountNumberCash, domain.AccountNumberClients)
	if err != nil || warning != "" {
		return nil, warning, err
	}

	now := time.Now()
	entryID := uuid.NewString()
	entry := domain.JournalEntry{
		EntryID:      entryID,
		EntryDate:    now,
		Description:  fmt.Sprintf("Payment %s for LTA %s", payment.Reference, ltaNumber),
		FiscalYearID: fy.FiscalYearID,
		SourceType:   domain.SourceLTAPayment,
		SourceID:     payment.PaymentID,
		Lines: []domain.JournalLine{
			{
				LineID:    uuid.NewString(),
				EntryID:   entryID,
				AccountID: accounts[domain.AccountNumberCash].AccountID,
				Debit:     payment.Amount,
				Credit:    decimal.Zero,
			},
			{
				LineID:    uuid.NewString(),
				EntryID:   entryID,
				AccountID: accounts[domain.AccountNumberClients].AccountID,
				Debit:     decimal.Zero,
				Credit:    payment.Amount,
			},
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	posted, err := s.post(ctx, entry)
	if err != nil {
		return nil, "", err
	}
	return posted, "", nil
}

func (s *accountingService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Number:      req.Number,
		Name:        req.Name,
		AccountType: req.AccountType,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, req.Number)
		}
		s.LogError(ctx, err, "Failed to save account", "number", req.Number)
		return nil, fmt.Errorf("failed to save account: %w", err)
	}
	return &account, nil
}

func (s *accountingService) GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	return s.repo.FindAccountByNumber(ctx, number)
}

func (s *accountingService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	return s.repo.ListAccounts(ctx, limit, offset)
}

// OpenFiscalYear opens a new accounting period. Only one period may be open
// at a time.
func (s *accountingService) OpenFiscalYear(ctx context.Context, req dto.OpenFiscalYearRequest, userID string) (*domain.FiscalYear, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", apperrors.ErrValidation)
	}

	existing, err := s.repo.FindOpenFiscalYear(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for open fiscal year: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: fiscal year %s is already open", apperrors.ErrConflict, existing.Label)
	}

	now := time.Now()
	fy := domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Label:        req.Label,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       domain.FiscalYearOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveFiscalYear(ctx, fy); err != nil {
		s.LogError(ctx, err, "Failed to save fiscal year", "label", req.Label)
		return nil, fmt.Errorf("failed to save fiscal year: %w", err)
	}

	s.LogInfo(ctx, "Fiscal year opened", "fiscal_year_id", fy.FiscalYearID, "label", fy.Label)
	return &fy, nil
}

func (s *accountingService) CloseFiscalYear(ctx context.Context, fiscalYearID string, userID string) (*domain.FiscalYear, error) {
	fy, err := s.repo.FindFiscalYearByID(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}
	if fy.Status != domain.FiscalYearOpen {
		return nil, fmt.Errorf("%w: fiscal year %s is not open", apperrors.ErrConflict, fy.Label)
	}

	now := time.Now()
	if err := s.repo.UpdateFiscalYearStatus(ctx, fiscalYearID, domain.FiscalYearClosed, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to close fiscal year", "fiscal_year_id", fiscalYearID)
		return nil, fmt.Errorf("failed to close fiscal year: %w", err)
	}

	fy.Status = domain.FiscalYearClosed
	fy.LastUpdatedAt = now
	fy.LastUpdatedBy = userID
	s.LogInfo(ctx, "Fiscal year closed", "fiscal_year_id", fiscalYearID, "label", fy.Label)
	return fy, nil
}

func (s *accountingService) GetCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error) {
	return s.repo.FindOpenFiscalYear(ctx)
}

func (s *accountingService) GetJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	return s.repo.FindJournalEntryByID(ctx, entryID)
}

func (s *accountingService) ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error) {
	return s.repo.ListJournalEntries(ctx, params.Limit, params.Offset)
}
