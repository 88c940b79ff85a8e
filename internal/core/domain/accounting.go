package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of a chart-of-accounts node.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Well-known chart-of-accounts numbers used by the automatic posting logic.
const (
	AccountNumberClients = "411" // clients receivable
	AccountNumberSales   = "701" // freight sales
	AccountNumberCash    = "531" // treasury / cash box
)

// Account is a chart-of-accounts node. Accounts are looked up by number and
// never created by the posting logic.
type Account struct {
	AccountID   string      `json:"accountID"` // Primary key (UUID)
	Number      string      `json:"number"`    // e.g. "411", "701", "531"
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	IsActive    bool        `json:"isActive"`
	AuditFields
}

// JournalSourceType ties a journal entry back to the business record that
// produced it.
type JournalSourceType string

const (
	SourceLTA        JournalSourceType = "LTA"
	SourceLTAPayment JournalSourceType = "LTA_PAYMENT"
)

// JournalLine is a single (account, debit, credit) leg of a journal entry.
// Exactly one of Debit and Credit is non-zero.
type JournalLine struct {
	LineID    string          `json:"lineID"` // Primary key (UUID)
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
}

// JournalEntry is a balanced double-entry accounting record posted against the
// chart of accounts, scoped to the open fiscal year.
// Invariant: sum of debit lines == sum of credit lines.
type JournalEntry struct {
	EntryID      string            `json:"entryID"` // Primary key (UUID)
	EntryDate    time.Time         `json:"entryDate"`
	Description  string            `json:"description"`
	FiscalYearID string            `json:"fiscalYearID"`
	SourceType   JournalSourceType `json:"sourceType"`
	SourceID     string            `json:"sourceID"`
	Lines        []JournalLine     `json:"lines,omitempty"`
	AuditFields
}

// IsBalanced reports whether total debits equal total credits across lines.
func (e *JournalEntry) IsBalanced() bool {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, l := range e.Lines {
		debits = debits.Add(l.Debit)
		credits = credits.Add(l.Credit)
	}
	return debits.Equal(credits)
}

// FiscalYearStatus indicates whether a fiscal year accepts postings.
type FiscalYearStatus string

const (
	FiscalYearOpen   FiscalYearStatus = "OPEN"
	FiscalYearClosed FiscalYearStatus = "CLOSED"
)

// FiscalYear is an accounting period. At most one fiscal year is OPEN at a
// time; all journal entries must fall within the open one.
type FiscalYear struct {
	FiscalYearID string           `json:"fiscalYearID"` // Primary key (UUID)
	Label        string           `json:"label"`        // e.g. "FY2026"
	StartDate    time.Time        `json:"startDate"`
	EndDate      time.Time        `json:"endDate"`
	Status       FiscalYearStatus `json:"status"`
	AuditFields
}
