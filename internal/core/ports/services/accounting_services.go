package services

import (
	"context"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
)

// LedgerPosterSvc turns business events into balanced journal entries.
//
// Both posting operations share the same degraded-mode policy: when no fiscal
// year is open or a required chart-of-accounts node is missing, they return a
// non-empty warning and a nil entry instead of an error. Persistence failures
// are returned as errors; callers decide whether those abort the triggering
// operation (they do not, for LTA creation and payment recording).
type LedgerPosterSvc interface {
	// PostLTACreation posts debit 411 / credit 701 for the calculated cost.
	PostLTACreation(ctx context.Context, lta domain.LTA, userID string) (*domain.JournalEntry, string, error)

	// PostPayment posts debit 531 / credit 411 for the payment amount.
	PostPayment(ctx context.Context, payment domain.LTAPayment, ltaNumber string, userID string) (*domain.JournalEntry, string, error)
}

// ChartOfAccountsSvc manages chart-of-accounts nodes.
type ChartOfAccountsSvc interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
}

// FiscalYearSvc manages accounting periods.
type FiscalYearSvc interface {
	OpenFiscalYear(ctx context.Context, req dto.OpenFiscalYearRequest, userID string) (*domain.FiscalYear, error)
	CloseFiscalYear(ctx context.Context, fiscalYearID string, userID string) (*domain.FiscalYear, error)
	GetCurrentFiscalYear(ctx context.Context) (*domain.FiscalYear, error)
}

// JournalBrowserSvc reads posted journal entries for audit display.
type JournalBrowserSvc interface {
	GetJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) ([]domain.JournalEntry, error)
}

// AccountingSvcFacade combines all accounting service interfaces.
type AccountingSvcFacade interface {
	LedgerPosterSvc
	ChartOfAccountsSvc
	FiscalYearSvc
	JournalBrowserSvc
}
