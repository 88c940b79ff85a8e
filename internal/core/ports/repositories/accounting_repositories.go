package repositories

import (
	"context"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
)

// AccountReader defines read operations for the chart of accounts.
type AccountReader interface {
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountWriter defines write operations for the chart of accounts.
type AccountWriter interface {
	SaveAccount(ctx context.Context, account domain.Account) error
}

// FiscalYearRepository manages accounting periods.
type FiscalYearRepository interface {
	// FindOpenFiscalYear returns the currently open period, or
	// apperrors.ErrNotFound when none is open.
	FindOpenFiscalYear(ctx context.Context) (*domain.FiscalYear, error)
	FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error)
	SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error
	UpdateFiscalYearStatus(ctx context.Context, fiscalYearID string, status domain.FiscalYearStatus, updatedBy string, updatedAt time.Time) error
}

// JournalEntryReader defines read operations for journal entries.
type JournalEntryReader interface {
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	FindJournalEntriesBySource(ctx context.Context, sourceType domain.JournalSourceType, sourceID string) ([]domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error)
}

// JournalEntryWriter persists a journal entry and all its lines as a single
// atomic unit: all lines or none.
type JournalEntryWriter interface {
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// AccountingRepositoryFacade combines all accounting repository interfaces.
type AccountingRepositoryFacade interface {
	AccountReader
	AccountWriter
	FiscalYearRepository
	JournalEntryReader
	JournalEntryWriter
}
