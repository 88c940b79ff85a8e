package services

import (
	"context"
	"time"

	"github.com/FretAfrique/fret_backoffice_app/internal/core/domain"
	"github.com/FretAfrique/fret_backoffice_app/internal/dto"
)

// UserSvcFacade manages operator accounts.
type UserSvcFacade interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)

	// AuthenticateUser verifies email/password credentials and returns the
	// user, or apperrors.ErrUnauthorized.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// FindOrCreateGoogleUser resolves the operator linked to a Google
	// identity, creating the account on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)

	// StoreRefreshToken persists the hash and expiry of a freshly issued
	// refresh token; empty hash with nil expiry clears it.
	StoreRefreshToken(ctx context.Context, userID string, refreshTokenHash string, expiry *time.Time) error
}
