package services

import (
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly wired
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.City = NewCityService(repos.CityRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Tariff = NewTariffService(repos.TariffRepo, repos.CityRepo)
	container.Accounting = NewAccountingService(repos.AccountingRepo)
	container.Treasury = NewTreasuryService(repos.TreasuryRepo)
	container.Currency = NewCurrencyService(repos.CurrencyRepo)

	// The LTA and payment workflows post to the ledger through the
	// accounting facade.
	container.LTA = NewLTAService(
		repos.LTARepo,
		repos.CityRepo,
		repos.ClientRepo,
		container.Tariff,
		container.Accounting,
		cfg.PublicTrackingBaseURL,
	)
	container.LTAPayment = NewLTAPaymentService(
		repos.PaymentRepo,
		repos.LTARepo,
		repos.TreasuryRepo,
		container.Accounting,
	)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
