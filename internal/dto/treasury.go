package dto

import (
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashBoxRequest defines the payload for creating a cash box.
type CreateCashBoxRequest struct {
	Name           string          `json:"name" binding:"required"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// CreateBankAccountRequest defines the payload for creating a bank account.
type CreateBankAccountRequest struct {
	BankName       string          `json:"bankName" binding:"required"`
	AccountNumber  string          `json:"accountNumber" binding:"required"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// AdjustBalanceRequest moves money in or out of a treasury account.
// Positive amounts deposit, negative amounts withdraw.
type AdjustBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason string          `json:"reason"`
}

// CashBoxResponse defines the data returned for a cash box.
type CashBoxResponse struct {
	CashBoxID string          `json:"cashBoxID"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	IsActive  bool            `json:"isActive"`
}

// BankAccountResponse defines the data returned for a bank account.
type BankAccountResponse struct {
	BankAccountID string          `json:"bankAccountID"`
	BankName      string          `json:"bankName"`
	AccountNumber string          `json:"accountNumber"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"isActive"`
}

// ListCashBoxesResponse wraps a list of cash boxes.
type ListCashBoxesResponse struct {
	CashBoxes []CashBoxResponse `json:"cashBoxes"`
}

// ListBankAccountsResponse wraps a list of bank accounts.
type ListBankAccountsResponse struct {
	BankAccounts []BankAccountResponse `json:"bankAccounts"`
}

// ToCashBoxResponse converts a domain.CashBox to CashBoxResponse.
func ToCashBoxResponse(cb *domain.CashBox) CashBoxResponse {
	return CashBoxResponse{
		CashBoxID: cb.CashBoxID,
		Name:      cb.Name,
		Balance:   cb.Balance,
		IsActive:  cb.IsActive,
	}
}

// ToBankAccountResponse converts a domain.BankAccount to BankAccountResponse.
func ToBankAccountResponse(ba *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID: ba.BankAccountID,
		BankName:      ba.BankName,
		AccountNumber: ba.AccountNumber,
		Balance:       ba.Balance,
		IsActive:      ba.IsActive,
	}
}
