package pgsql

import (
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all PostgreSQL repositories against one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CityRepo:       NewCityRepository(pool),
		ClientRepo:     NewClientRepository(pool),
		TariffRepo:     NewTariffRepository(pool),
		LTARepo:        NewLTARepository(pool),
		PaymentRepo:    NewPaymentRepository(pool),
		AccountingRepo: NewAccountingRepository(pool),
		TreasuryRepo:   NewTreasuryRepository(pool),
		CurrencyRepo:   NewCurrencyRepository(pool),
		UserRepo:       NewUserRepository(pool),
	}
}
