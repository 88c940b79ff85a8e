package dto

import (
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
)

// CreateCityRequest defines the payload for creating a city.
// The iata tag is a custom validator registered at startup.
type CreateCityRequest struct {
	Name     string `json:"name" binding:"required"`
	IATACode string `json:"iataCode" binding:"required,iata"`
	Country  string `json:"country" binding:"required"`
}

// UpdateCityRequest defines the payload for updating a city. Nil fields are
// left untouched.
type UpdateCityRequest struct {
	Name     *string `json:"name,omitempty"`
	Country  *string `json:"country,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ListCitiesParams holds query parameters for listing cities.
type ListCitiesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// CityResponse defines the data returned for a city.
type CityResponse struct {
	CityID   string `json:"cityID"`
	Name     string `json:"name"`
	IATACode string `json:"iataCode"`
	Country  string `json:"country"`
	IsActive bool   `json:"isActive"`
}

// ListCitiesResponse wraps a list of cities.
type ListCitiesResponse struct {
	Cities []CityResponse `json:"cities"`
}

// ToCityResponse converts a domain.City to CityResponse.
func ToCityResponse(c *domain.City) CityResponse {
	return CityResponse{
		CityID:   c.CityID,
		Name:     c.Name,
		IATACode: c.IATACode,
		Country:  c.Country,
		IsActive: c.IsActive,
	}
}
