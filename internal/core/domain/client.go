package domain

// Client is a customer of the freight forwarder. A client reference is only
// mandatory on an LTA when its payment mode is TO_INVOICE.
type Client struct {
	ClientID     string `json:"clientID"` // Primary key (UUID)
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
