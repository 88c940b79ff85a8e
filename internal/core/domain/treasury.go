package domain

import "github.com/shopspring/decimal"

// CashBox is a physical cash drawer whose balance moves with cash payments.
// Balance mutations happen inside the same database transaction as the
// triggering payment.
type CashBox struct {
	CashBoxID string          `json:"cashBoxID"` // Primary key (UUID)
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	IsActive  bool            `json:"isActive"`
	AuditFields
}

// BankAccount is a treasury bank account tracked by the back office.
type BankAccount struct {
	BankAccountID string          `json:"bankAccountID"` // Primary key (UUID)
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}
