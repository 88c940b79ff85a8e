package services

import (
	"context"
	"fmt"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/google/uuid"
)

// clientService implements portssvc.ClientSvcFacade.
type clientService struct {
	BaseService
	repo portsrepo.ClientRepositoryFacade
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// NewClientService creates a new client service.
func NewClientService(repo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{repo: repo}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	now := time.Now()
	client := domain.Client{
		ClientID:     uuid.NewString(),
		Name:         req.Name,
		Address:      req.Address,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.repo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", "name", req.Name)
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.repo.FindClientByID(ctx, clientID)
}

func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, error) {
	return s.repo.ListClients(ctx, params.Limit, params.Offset)
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	client, err := s.repo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.ContactEmail != nil {
		client.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		client.ContactPhone = *req.ContactPhone
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = userID

	if err := s.repo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", "client_id", clientID)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}
