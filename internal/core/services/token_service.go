package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finbooks/billing_backoffice/internal/core/domain"
	portssvc "github.com/finbooks/billing_backoffice/internal/core/ports/services"
	"github.com/finbooks/billing_backoffice/internal/utils"
)

// tokenService issues signed JWT access tokens.
type tokenService struct {
	secret         string
	expiryDuration time.Duration
	issuer         string
}

// NewTokenService creates a new TokenSvcFacade.
func NewTokenService(secret string, expiryDuration time.Duration, issuer string) portssvc.TokenSvcFacade {
	return &tokenService{
		secret:         secret,
		expiryDuration: expiryDuration,
		issuer:         issuer,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a signed token for the user and returns it with
// its expiry time.
func (s *tokenService) GenerateAccessToken(_ context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiryDuration)
	token, err := utils.GenerateJWT(user.UserID, s.secret, s.expiryDuration, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}
