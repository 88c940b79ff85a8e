package domain

// City is a master-data record for an origin or destination of shipments.
// The IATA code is a unique 3-letter identifier, stored uppercased.
type City struct {
	CityID   string `json:"cityID"` // Primary key (UUID)
	Name     string `json:"name"`
	IATACode string `json:"iataCode"`
	Country  string `json:"country"`
	IsActive bool   `json:"isActive"`
	AuditFields
}
