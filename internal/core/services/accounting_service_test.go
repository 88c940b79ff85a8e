package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func openFiscalYear() *domain.FiscalYear {
	return &domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Label:        "FY2025",
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		Status:       domain.FiscalYearOpen,
	}
}

func accountWithNumber(number string, accountType domain.AccountType) *domain.Account {
	return &domain.Account{
		AccountID:   uuid.NewString(),
		Number:      number,
		AccountType: accountType,
		IsActive:    true,
	}
}

func TestPostLTACreation_BalancedEntry(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountingRepository)
	svc := services.NewAccountingService(repo)

	fy := openFiscalYear()
	clients := accountWithNumber(domain.AccountNumberClients, domain.Asset)
	sales := accountWithNumber(domain.AccountNumberSales, domain.Revenue)

	repo.On("FindOpenFiscalYear", ctx).Return(fy, nil).Once()
	repo.On("FindAccountByNumber", ctx, domain.AccountNumberClients).Return(clients, nil).Once()
	repo.On("FindAccountByNumber", ctx, domain.AccountNumberSales).Return(sales, nil).Once()

	var savedEntry domain.JournalEntry
	repo.On("SaveJournalEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(1).(domain.JournalEntry)
		}).Return(nil).Once()

	lta := domain.LTA{
		LTAID:          uuid.NewString(),
		LTANumber:      "LTA-20250314-AB12CD",
		CalculatedCost: decimal.RequireFromString("15.00"),
	}
	entry, warning, err := svc.PostLTACreation(ctx, lta, uuid.NewString())

	require.NoError(t, err)
	assert.Empty(t, warning)
	require.NotNil(t, entry)
	assert.True(t, savedEntry.IsBalanced())
	assert.Equal(t, fy.FiscalYearID, savedEntry.FiscalYearID)
	assert.Equal(t, domain.SourceLTA, savedEntry.SourceType)
	assert.Equal(t, lta.LTAID, savedEntry.SourceID)

	require.Len(t, savedEntry.Lines, 2)
	assert.Equal(t, clients.AccountID, savedEntry.Lines[0].AccountID)
	assert.True(t, savedEntry.Lines[0].Debit.Equal(lta.CalculatedCost))
	assert.True(t, savedEntry.Lines[0].Credit.IsZero())
	assert.Equal(t, sales.AccountID, savedEntry.Lines[1].AccountID)
	assert.True(t, savedEntry.Lines[1].Credit.Equal(lta.CalculatedCost))
	assert.True(t, savedEntry.Lines[1].Debit.IsZero())
	repo.AssertExpectations(t)
}

func TestPostLTACreation_NoOpenFiscalYear_Skips(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountingRepository)
	svc := services.NewAccountingService(repo)

	repo.On("FindOpenFiscalYear", ctx).Return(nil, apperrors.ErrNotFound).Once()

	entry, warning, err := svc.PostLTACreation(ctx, domain.LTA{
		CalculatedCost: decimal.NewFromInt(10),
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Equal(t, "no open fiscal year; accounting entry skipped", warning)
	repo.AssertNotCalled(t, "SaveJournalEntry", mock.Anything, mock.Anything)
}

func TestPostLTACreation_MissingAccount_Skips(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountingRepository)
	svc := services.NewAccountingService(repo)

	repo.On("FindOpenFiscalYear", ctx).Return(openFiscalYear(), nil).Once()
	repo.On("FindAccountByNumber", ctx, domain.AccountNumberClients).
		Return(nil, apperrors.ErrNotFound).Once()

	entry, warning, err := svc.PostLTACreation(ctx, domain.LTA{
		CalculatedCost: decimal.NewFromInt(10),
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.Contains(t, warning, "411")
	repo.AssertNotCalled(t, "SaveJournalEntry", mock.Anything, mock.Anything)
}

func TestPostPayment_BalancedEntry(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountingRepository)
	svc := services.NewAccountingService(repo)

	fy := openFiscalYear()
	cash := accountWithNumber(domain.AccountNumberCash, domain.Asset)
	clients := accountWithNumber(domain.AccountNumberClients, domain.Asset)

	repo.On("FindOpenFiscalYear", ctx).Return(fy, nil).Once()
	repo.On("FindAccountByNumber", ctx, domain.AccountNumberCash).Return(cash, nil).Once()
	repo.On("FindAccountByNumber", ctx, domain.AccountNumberClients).Return(clients, nil).Once()

	var savedEntry domain.JournalEntry
	repo.On("SaveJournalEntry", ctx, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(1).(domain.JournalEntry)
		}).Return(nil).Once()

	payment := domain.LTAPayment{
		PaymentID: uuid.NewString(),
		Amount:    decimal.RequireFromString("15.00"),
		Reference: "PAY-20250314-0001-AB12CD34",
	}
	entry, warning, err := svc.PostPayment(ctx, payment, "LTA-20250314-AB12CD", uuid.NewString())

	require.NoError(t, err)
	assert.Empty(t, warning)
	require.NotNil(t, entry)
	assert.True(t, savedEntry.IsBalanced())
	assert.Equal(t, domain.SourceLTAPayment, savedEntry.SourceType)
	assert.Equal(t, payment.PaymentID, savedEntry.SourceID)

	require.Len(t, savedEntry.Lines, 2)
	assert.Equal(t, cash.AccountID, savedEntry.Lines[0].AccountID)
	assert.True(t, savedEntry.Lines[0].Debit.Equal(payment.Amount))
	assert.Equal(t, clients.AccountID, savedEntry.Lines[1].AccountID)
	assert.True(t, savedEntry.Lines[1].Credit.Equal(payment.Amount))
	repo.AssertExpectations(t)
}

func TestOpenFiscalYear_RejectsSecondOpenYear(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountingRepository)
	svc := services.NewAccountingService(repo)

	repo.On("FindOpenFiscalYear", ctx).Return(openFiscalYear(), nil).Once()

	_, err := svc.OpenFiscalYear(ctx, dto.OpenFiscalYearRequest{
		Label:     "FY2026",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}, uuid.NewString())

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	repo.AssertNotCalled(t, "SaveFiscalYear", mock.Anything, mock.Anything)
}

func TestOpenFiscalYear_Success(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountingRepository)
	svc := services.NewAccountingService(repo)

	repo.On("FindOpenFiscalYear", ctx).Return(nil, apperrors.ErrNotFound).Once()
	repo.On("SaveFiscalYear", ctx, mock.AnythingOfType("domain.FiscalYear")).Return(nil).Once()

	fy, err := svc.OpenFiscalYear(ctx, dto.OpenFiscalYearRequest{
		Label:     "FY2026",
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}, uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, domain.FiscalYearOpen, fy.Status)
	repo.AssertExpectations(t)
}

func TestCloseFiscalYear_AlreadyClosed(t *testing.T) {
	ctx := context.Background()
	repo := new(MockAccountingRepository)
	svc := services.NewAccountingService(repo)

	closed := openFiscalYear()
	closed.Status = domain.FiscalYearClosed
	repo.On("FindFiscalYearByID", ctx, closed.FiscalYearID).Return(closed, nil).Once()

	_, err := svc.CloseFiscalYear(ctx, closed.FiscalYearID, uuid.NewString())

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}
