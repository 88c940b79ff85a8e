package services_test

import (
	"context"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock CityRepository ---

type MockCityRepository struct {
	mock.Mock
}

var _ portsrepo.CityRepositoryFacade = (*MockCityRepository)(nil)

func (m *MockCityRepository) FindCityByID(ctx context.Context, cityID string) (*domain.City, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) FindCityByIATACode(ctx context.Context, iataCode string) (*domain.City, error) {
	args := m.Called(ctx, iataCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) ListCities(ctx context.Context, limit int, offset int) ([]domain.City, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.City), args.Error(1)
}

func (m *MockCityRepository) SaveCity(ctx context.Context, city domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) UpdateCity(ctx context.Context, city domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

// --- Mock ClientRepository ---

type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, limit int, offset int) ([]domain.Client, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

// --- Mock TariffRepository ---

type MockTariffRepository struct {
	mock.Mock
}

var _ portsrepo.TariffRepositoryFacade = (*MockTariffRepository)(nil)

func (m *MockTariffRepository) FindTariffByID(ctx context.Context, tariffID string) (*domain.Tariff, error) {
	args := m.Called(ctx, tariffID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}

func (m *MockTariffRepository) FindActiveTariffForRoute(ctx context.Context, originCityID, destinationCityID string, asOf time.Time) (*domain.Tariff, error) {
	args := m.Called(ctx, originCityID, destinationCityID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tariff), args.Error(1)
}

func (m *MockTariffRepository) ListTariffs(ctx context.Context, limit int, offset int) ([]domain.Tariff, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tariff), args.Error(1)
}

func (m *MockTariffRepository) SaveTariff(ctx context.Context, tariff domain.Tariff) error {
	args := m.Called(ctx, tariff)
	return args.Error(0)
}

func (m *MockTariffRepository) UpdateTariff(ctx context.Context, tariff domain.Tariff) error {
	args := m.Called(ctx, tariff)
	return args.Error(0)
}

// --- Mock LTARepository ---

type MockLTARepository struct {
	mock.Mock
}

var _ portsrepo.LTARepositoryFacade = (*MockLTARepository)(nil)

func (m *MockLTARepository) FindLTAByID(ctx context.Context, ltaID string) (*domain.LTA, error) {
	args := m.Called(ctx, ltaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LTA), args.Error(1)
}

func (m *MockLTARepository) FindLTAByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.LTA, error) {
	args := m.Called(ctx, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LTA), args.Error(1)
}

func (m *MockLTARepository) ListLTAs(ctx context.Context, limit int, offset int, status *domain.LTAStatus) ([]domain.LTA, error) {
	args := m.Called(ctx, limit, offset, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LTA), args.Error(1)
}

func (m *MockLTARepository) LTANumberExists(ctx context.Context, ltaNumber string) (bool, error) {
	args := m.Called(ctx, ltaNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockLTARepository) TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error) {
	args := m.Called(ctx, trackingNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockLTARepository) FindStatusHistoryByLTAID(ctx context.Context, ltaID string) ([]domain.LTAStatusHistory, error) {
	args := m.Called(ctx, ltaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LTAStatusHistory), args.Error(1)
}

func (m *MockLTARepository) SaveLTA(ctx context.Context, lta domain.LTA, history domain.LTAStatusHistory) error {
	args := m.Called(ctx, lta, history)
	return args.Error(0)
}

func (m *MockLTARepository) UpdateLTAStatus(ctx context.Context, lta domain.LTA, history domain.LTAStatusHistory) error {
	args := m.Called(ctx, lta, history)
	return args.Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.LTAPayment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LTAPayment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByLTAID(ctx context.Context, ltaID string) ([]domain.LTAPayment, error) {
	args := m.Called(ctx, ltaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LTAPayment), args.Error(1)
}

func (m *MockPaymentRepository) SumPaymentsByLTAID(ctx context.Context, ltaID string) (decimal.Decimal, error) {
	args := m.Called(ctx, ltaID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) CountPaymentsOnDate(ctx context.Context, day time.Time) (int, error) {
	args := m.Called(ctx, day)
	return args.Int(0), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.LTAPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock AccountingRepository ---

type MockAccountingRepository struct {
	mock.Mock
}

var _ portsrepo.AccountingRepositoryFacade = (*MockAccountingRepository)(nil)

func (m *MockAccountingRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountingRepository) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountingRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountingRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountingRepository) FindOpenFiscalYear(ctx context.Context) (*domain.FiscalYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockAccountingRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockAccountingRepository) SaveFiscalYear(ctx context.Context, fy domain.FiscalYear) error {
	args := m.Called(ctx, fy)
	return args.Error(0)
}

func (m *MockAccountingRepository) UpdateFiscalYearStatus(ctx context.Context, fiscalYearID string, status domain.FiscalYearStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, fiscalYearID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockAccountingRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockAccountingRepository) FindJournalEntriesBySource(ctx context.Context, sourceType domain.JournalSourceType, sourceID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, sourceType, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockAccountingRepository) ListJournalEntries(ctx context.Context, limit int, offset int) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockAccountingRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// --- Mock TreasuryRepository ---

type MockTreasuryRepository struct {
	mock.Mock
}

var _ portsrepo.TreasuryRepositoryFacade = (*MockTreasuryRepository)(nil)

func (m *MockTreasuryRepository) SaveCashBox(ctx context.Context, cashBox domain.CashBox) error {
	args := m.Called(ctx, cashBox)
	return args.Error(0)
}

func (m *MockTreasuryRepository) FindCashBoxByID(ctx context.Context, cashBoxID string) (*domain.CashBox, error) {
	args := m.Called(ctx, cashBoxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashBox), args.Error(1)
}

func (m *MockTreasuryRepository) ListCashBoxes(ctx context.Context, limit int, offset int) ([]domain.CashBox, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashBox), args.Error(1)
}

func (m *MockTreasuryRepository) AdjustCashBoxBalance(ctx context.Context, cashBoxID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, cashBoxID, delta, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockTreasuryRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockTreasuryRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockTreasuryRepository) ListBankAccounts(ctx context.Context, limit int, offset int) ([]domain.BankAccount, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockTreasuryRepository) AdjustBankAccountBalance(ctx context.Context, bankAccountID string, delta decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, bankAccountID, delta, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---

type MockCurrencyRepository struct {
	mock.Mock
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

// --- Mock CostCalculator ---

type MockCostCalculator struct {
	mock.Mock
}

var _ portssvc.CostCalculatorSvc = (*MockCostCalculator)(nil)

func (m *MockCostCalculator) CalculateCost(ctx context.Context, originCityID, destinationCityID string, weightKg decimal.Decimal) (decimal.Decimal, bool, error) {
	args := m.Called(ctx, originCityID, destinationCityID, weightKg)
	return args.Get(0).(decimal.Decimal), args.Bool(1), args.Error(2)
}

// --- Mock LedgerPoster ---

type MockLedgerPoster struct {
	mock.Mock
}

var _ portssvc.LedgerPosterSvc = (*MockLedgerPoster)(nil)

func (m *MockLedgerPoster) PostLTACreation(ctx context.Context, lta domain.LTA, userID string) (*domain.JournalEntry, string, error) {
	args := m.Called(ctx, lta, userID)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.String(1), args.Error(2)
}

func (m *MockLedgerPoster) PostPayment(ctx context.Context, payment domain.LTAPayment, ltaNumber string, userID string) (*domain.JournalEntry, string, error) {
	args := m.Called(ctx, payment, ltaNumber, userID)
	var entry *domain.JournalEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.JournalEntry)
	}
	return entry, args.String(1), args.Error(2)
}
