package repositories

import (
	"context"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
)

// CurrencyReader defines read operations for currencies.
type CurrencyReader interface {
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currencies.
type CurrencyWriter interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// ExchangeRateRepository manages exchange rates. The latest effective rate per
// pair wins on lookup.
type ExchangeRateRepository interface {
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
	FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}

// CurrencyRepositoryFacade combines currency repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
	ExchangeRateRepository
}
