package services

import (
	"context"
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	"github.com/finbooks/billing_backoffice/internal/dto"
)

// UserSvcFacade manages user records.
type UserSvcFacade interface {
	// CreateUser validates and persists a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateUser verifies username/password credentials and returns the
	// user on success, or apperrors.ErrUnauthorized on failure.
	AuthenticateUser(ctx context.Context, username string, password string) (*domain.User, error)
}

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the given user
	// and returns it along with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
