package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetExchangeRate_CachesPerPair(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCurrencyRepository)
	svc := services.NewCurrencyService(repo)

	rate := &domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: "XOF",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.0015"),
		DateEffective:    time.Now(),
	}
	// A single repository hit serves both lookups.
	repo.On("FindExchangeRate", ctx, "XOF", "EUR").Return(rate, nil).Once()

	first, err := svc.GetExchangeRate(ctx, "XOF", "EUR")
	require.NoError(t, err)
	second, err := svc.GetExchangeRate(ctx, "xof", "eur")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "FindExchangeRate", 1)
}

func TestUpsertExchangeRate_InvalidatesCachedPair(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCurrencyRepository)
	svc := services.NewCurrencyService(repo)

	stale := &domain.ExchangeRate{
		FromCurrencyCode: "XOF",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.0015"),
	}
	fresh := &domain.ExchangeRate{
		FromCurrencyCode: "XOF",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.0016"),
	}

	repo.On("FindExchangeRate", ctx, "XOF", "EUR").Return(stale, nil).Once()
	_, err := svc.GetExchangeRate(ctx, "XOF", "EUR")
	require.NoError(t, err)

	repo.On("FindCurrencyByCode", ctx, "XOF").Return(&domain.Currency{CurrencyCode: "XOF"}, nil).Once()
	repo.On("FindCurrencyByCode", ctx, "EUR").Return(&domain.Currency{CurrencyCode: "EUR"}, nil).Once()
	repo.On("SaveExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).Return(nil).Once()
	_, err = svc.UpsertExchangeRate(ctx, dto.UpsertExchangeRateRequest{
		FromCurrencyCode: "XOF",
		ToCurrencyCode:   "EUR",
		Rate:             decimal.RequireFromString("0.0016"),
		DateEffective:    time.Now(),
	}, uuid.NewString())
	require.NoError(t, err)

	// The cache entry for the pair was dropped, so the next read goes back
	// to the repository.
	repo.On("FindExchangeRate", ctx, "XOF", "EUR").Return(fresh, nil).Once()
	got, err := svc.GetExchangeRate(ctx, "XOF", "EUR")
	require.NoError(t, err)
	assert.True(t, got.Rate.Equal(fresh.Rate))
	repo.AssertExpectations(t)
}
