package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/google/uuid"
)

// currencyService implements portssvc.CurrencySvcFacade. Exchange rate
// lookups go through an in-process cache keyed by currency pair; the entry
// for a pair is dropped whenever its rate is upserted so readers never see a
// stale rate after a write.
type currencyService struct {
	BaseService
	repo portsrepo.CurrencyRepositoryFacade

	mu        sync.RWMutex
	rateCache map[string]*domain.ExchangeRate
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// NewCurrencyService creates a new currency service.
func NewCurrencyService(repo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{
		repo:      repo,
		rateCache: make(map[string]*domain.ExchangeRate),
	}
}

func rateCacheKey(fromCode, toCode string) string {
	return fromCode + "->" + toCode
}

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, userID string) (*domain.Currency, error) {
	code := strings.ToUpper(req.CurrencyCode)

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode: code,
		Name:         req.Name,
		Precision:    req.Precision,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", "code", code)
		return nil, fmt.Errorf("failed to save currency: %w", err)
	}
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	return s.repo.FindCurrencyByCode(ctx, strings.ToUpper(code))
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return s.repo.ListCurrencies(ctx)
}

// UpsertExchangeRate stores a new rate for a pair and invalidates the cached
// entry for that pair.
func (s *currencyService) UpsertExchangeRate(ctx context.Context, req dto.UpsertExchangeRateRequest, userID string) (*domain.ExchangeRate, error) {
	fromCode := strings.ToUpper(req.FromCurrencyCode)
	toCode := strings.ToUpper(req.ToCurrencyCode)
	if fromCode == toCode {
		return nil, fmt.Errorf("%w: from and to currencies must differ", apperrors.ErrValidation)
	}
	if !req.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}

	for _, code := range []string{fromCode, toCode} {
		if _, err := s.repo.FindCurrencyByCode(ctx, code); err != nil {
			return nil, fmt.Errorf("%w: currency %s is not registered", apperrors.ErrValidation, code)
		}
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             req.Rate,
		DateEffective:    req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveExchangeRate(ctx, rate); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate", "from", fromCode, "to", toCode)
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	s.mu.Lock()
	delete(s.rateCache, rateCacheKey(fromCode, toCode))
	s.mu.Unlock()

	s.LogInfo(ctx, "Exchange rate upserted", "from", fromCode, "to", toCode, "rate", req.Rate.String())
	return &rate, nil
}

// GetExchangeRate returns the latest effective rate for a pair, serving from
// the cache when possible.
func (s *currencyService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	key := rateCacheKey(fromCode, toCode)

	s.mu.RLock()
	cached, ok := s.rateCache[key]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	rate, err := s.repo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.rateCache[key] = rate
	s.mu.Unlock()
	return rate, nil
}
