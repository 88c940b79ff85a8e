package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a master-data record for a supported currency.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO 4217, primary key
	Name         string `json:"name"`
	Precision    int    `json:"precision"` // decimal places, e.g. 2 for XOF-style rounding kept at 0
	AuditFields
}

// ExchangeRate is the conversion rate between two currencies effective from a
// given date. Lookups are served through an explicit in-memory cache owned by
// the currency service.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"` // Primary key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}
