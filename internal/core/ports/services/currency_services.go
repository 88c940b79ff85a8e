package services

import (
	"context"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
)

// CurrencySvcFacade manages currencies and exchange rates. Rate lookups are
// served from an explicit in-memory cache keyed by currency pair; the cache
// entry for a pair is invalidated when its rate is upserted.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.Currency, error)
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	UpsertExchangeRate(ctx context.Context, req dto.UpsertExchangeRateRequest, userID string) (*domain.ExchangeRate, error)
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}
