package services

import (
	"context"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
)

// CitySvcFacade manages city master data.
type CitySvcFacade interface {
	CreateCity(ctx context.Context, req dto.CreateCityRequest, userID string) (*domain.City, error)
	GetCityByID(ctx context.Context, cityID string) (*domain.City, error)
	GetCityByIATACode(ctx context.Context, iataCode string) (*domain.City, error)
	ListCities(ctx context.Context, params dto.ListCitiesParams) ([]domain.City, error)
	UpdateCity(ctx context.Context, cityID string, req dto.UpdateCityRequest, userID string) (*domain.City, error)
}

// ClientSvcFacade manages client master data.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error)
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error)
}
