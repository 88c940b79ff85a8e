package dto

import (
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
)

// CreateClientRequest defines the payload for creating a client.
type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	Address      string `json:"address"`
	ContactEmail string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
}

// UpdateClientRequest defines the payload for updating a client.
type UpdateClientRequest struct {
	Name         *string `json:"name,omitempty"`
	Address      *string `json:"address,omitempty"`
	ContactEmail *string `json:"contactEmail,omitempty" binding:"omitempty,email"`
	ContactPhone *string `json:"contactPhone,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

// ListClientsParams holds query parameters for listing clients.
type ListClientsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID     string `json:"clientID"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	IsActive     bool   `json:"isActive"`
}

// ListClientsResponse wraps a list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain.Client to ClientResponse.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:     c.ClientID,
		Name:         c.Name,
		Address:      c.Address,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		IsActive:     c.IsActive,
	}
}
