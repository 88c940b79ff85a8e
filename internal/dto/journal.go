package dto

import (
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the payload for adding a chart-of-accounts node.
type CreateAccountRequest struct {
	Number      string             `json:"number" binding:"required"`
	Name        string             `json:"name" binding:"required"`
	AccountType domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID   string             `json:"accountID"`
	Number      string             `json:"number"`
	Name        string             `json:"name"`
	AccountType domain.AccountType `json:"accountType"`
	IsActive    bool               `json:"isActive"`
}

// ListAccountsResponse wraps the chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// OpenFiscalYearRequest defines the payload for opening an accounting period.
type OpenFiscalYearRequest struct {
	Label     string    `json:"label" binding:"required"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// FiscalYearResponse defines the data returned for a fiscal year.
type FiscalYearResponse struct {
	FiscalYearID string                  `json:"fiscalYearID"`
	Label        string                  `json:"label"`
	StartDate    time.Time               `json:"startDate"`
	EndDate      time.Time               `json:"endDate"`
	Status       domain.FiscalYearStatus `json:"status"`
}

// JournalLineResponse defines one leg of a journal entry.
type JournalLineResponse struct {
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID      string                   `json:"entryID"`
	EntryDate    time.Time                `json:"entryDate"`
	Description  string                   `json:"description"`
	FiscalYearID string                   `json:"fiscalYearID"`
	SourceType   domain.JournalSourceType `json:"sourceType"`
	SourceID     string                   `json:"sourceID"`
	Lines        []JournalLineResponse    `json:"lines,omitempty"`
}

// ListJournalEntriesParams holds query parameters for listing journal entries.
type ListJournalEntriesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListJournalEntriesResponse wraps a list of journal entries.
type ListJournalEntriesResponse struct {
	Entries []JournalEntryResponse `json:"entries"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   a.AccountID,
		Number:      a.Number,
		Name:        a.Name,
		AccountType: a.AccountType,
		IsActive:    a.IsActive,
	}
}

// ToFiscalYearResponse converts a domain.FiscalYear to FiscalYearResponse.
func ToFiscalYearResponse(fy *domain.FiscalYear) FiscalYearResponse {
	return FiscalYearResponse{
		FiscalYearID: fy.FiscalYearID,
		Label:        fy.Label,
		StartDate:    fy.StartDate,
		EndDate:      fy.EndDate,
		Status:       fy.Status,
	}
}

// ToJournalEntryResponse converts a domain.JournalEntry with its lines.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
		}
	}
	return JournalEntryResponse{
		EntryID:      e.EntryID,
		EntryDate:    e.EntryDate,
		Description:  e.Description,
		FiscalYearID: e.FiscalYearID,
		SourceType:   e.SourceType,
		SourceID:     e.SourceID,
		Lines:        lines,
	}
}
