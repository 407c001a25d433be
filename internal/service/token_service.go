package service

import (
	"context"

	"github.com/dkulagin/bookmarkd/internal/apierr"
	"github.com/dkulagin/bookmarkd/internal/logger"
	"github.com/dkulagin/bookmarkd/internal/model"
)

// TokenService turns authenticated identities into access tokens and bearer
// tokens back into identities. Sign and verify are pure; no state is kept
// between requests.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// Issue creates an access token for the user.
func (s *TokenService) Issue(_ context.Context, user model.User) (string, error) {
	accessToken, err := s.manager.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		// Operational alert: signing fails only on misconfiguration.
		s.logger.Error("Token service: failed to sign access token",
			"user_id", user.ID,
			"error", err.Error())
		return "", apierr.NewErrSigningFailure(err)
	}

	return accessToken, nil
}

// GetIdentity verifies the token and reconstructs the caller's identity.
// Every call performs a fresh signature and expiry check.
func (s *TokenService) GetIdentity(_ context.Context, token string) (model.Identity, error) {
	return s.manager.ParseAccessToken(token)
}
