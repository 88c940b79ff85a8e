package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/apperrors"
	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	portsrepo "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/FretAfrique/fret_backoffice_app/internal/core/ports/services"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
	"github.com/FretAfrique/fret_backoffice_app/internal/utils"
	"github.com/google/uuid"
)

// userService implements portssvc.UserSvcFacade.
type userService struct {
	BaseService
	repo portsrepo.UserRepositoryFacade
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// NewUserService creates a new user service.
func NewUserService(repo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{repo: repo}
}

func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	email := strings.ToLower(req.Email)

	if _, err := s.repo.FindUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: passwordHash,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "self-registration",
			LastUpdatedAt: now,
			LastUpdatedBy: "self-registration",
		},
	}
	if err := s.repo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", "email", email)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "Operator registered", "user_id", user.UserID)
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindUserByEmail(ctx, strings.ToLower(email))
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.repo.ListUsers(ctx, limit, offset)
}

// AuthenticateUser verifies email/password credentials. It deliberately
// returns the same error for unknown email and bad password.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// FindOrCreateGoogleUser resolves the operator behind a Google identity,
// linking by email when the operator already has a password account, and
// creating a fresh account on first sign-in.
func (s *userService) FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("%w: incomplete google user info", apperrors.ErrValidation)
	}
	if !info.VerifiedEmail {
		return nil, fmt.Errorf("%w: google email is not verified", apperrors.ErrUnauthorized)
	}

	user, err := s.repo.FindUserByGoogleID(ctx, info.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	email := strings.ToLower(info.Email)
	user, err = s.repo.FindUserByEmail(ctx, email)
	if err == nil {
		googleID := info.ID
		user.GoogleID = &googleID
		user.LastUpdatedAt = time.Now()
		user.LastUpdatedBy = user.UserID
		if err := s.repo.UpdateUser(ctx, *user); err != nil {
			return nil, fmt.Errorf("failed to link google identity: %w", err)
		}
		s.LogInfo(ctx, "Google identity linked to existing operator", "user_id", user.UserID)
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	now := time.Now()
	googleID := info.ID
	newUser := domain.User{
		UserID:   uuid.NewString(),
		Name:     info.Name,
		Email:    email,
		GoogleID: &googleID,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "google-oauth",
			LastUpdatedAt: now,
			LastUpdatedBy: "google-oauth",
		},
	}
	if err := s.repo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to save google user", "email", email)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "Operator created from google sign-in", "user_id", newUser.UserID)
	return &newUser, nil
}

// StoreRefreshToken persists the hash and expiry of a freshly issued refresh
// token. An empty hash with nil expiry clears the stored token (logout).
func (s *userService) StoreRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry *time.Time) error {
	if err := s.repo.UpdateRefreshToken(ctx, userID, refreshTokenHash, expiry, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to store refresh token", "user_id", userID)
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}
