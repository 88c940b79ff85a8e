package services

// ServiceContainer bundles all service facades for injection into handlers.
type ServiceContainer struct {
	City        CitySvcFacade
	Client      ClientSvcFacade
	Tariff      TariffSvcFacade
	LTA         LTASvcFacade
	LTAPayment  LTAPaymentSvcFacade
	Accounting  AccountingSvcFacade
	Treasury    TreasurySvcFacade
	Currency    CurrencySvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthSvcFacade
}
