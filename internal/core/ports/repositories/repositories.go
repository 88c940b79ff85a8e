package repositories

// RepositoryProvider bundles all repository facades for dependency injection
// into the service container.
type RepositoryProvider struct {
	CityRepo       CityRepositoryFacade
	ClientRepo     ClientRepositoryFacade
	TariffRepo     TariffRepositoryFacade
	LTARepo        LTARepositoryFacade
	PaymentRepo    PaymentRepositoryFacade
	AccountingRepo AccountingRepositoryFacade
	TreasuryRepo   TreasuryRepositoryFacade
	CurrencyRepo   CurrencyRepositoryFacade
	UserRepo       UserRepositoryFacade
}
