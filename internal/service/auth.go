package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dkulagin/bookmarkd/internal/apierr"
	"github.com/dkulagin/bookmarkd/internal/logger"
	"github.com/dkulagin/bookmarkd/internal/model"
	"github.com/dkulagin/bookmarkd/internal/password"
)

// Auth orchestrates signup and signin. The password hash never crosses this
// boundary: every user returned from here is sanitized.
type Auth struct {
	userStore    model.UserStore
	hasher       *password.Hasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher *password.Hasher,
	tokenService *TokenService,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// SignUp hashes the password and persists a new user. A duplicate email,
// even under concurrent signups, surfaces as an email-taken conflict; the
// unique index in the store is the arbiter.
func (a *Auth) SignUp(ctx context.Context, email, pass string) (model.User, error) {
	a.logger.Debug("Auth service: starting user signup",
		"email", email)

	hash, err := a.hasher.Hash(ctx, pass)
	if err != nil {
		// Operational alert: hashing only fails on environment trouble,
		// never on input shape.
		a.logger.Error("Auth service: password hashing failed",
			"email", email,
			"error", err.Error())
		return model.User{}, apierr.NewErrHashingFailure(err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	savedUser, err := a.userStore.Create(ctx, user)
	if errors.Is(err, model.ErrDuplicateEmail) {
		a.logger.Info("Auth service: signup with taken email",
			"email", email)
		return model.User{}, apierr.NewErrEmailTaken()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user signup completed",
		"user_id", savedUser.ID,
		"email", savedUser.Email)

	return savedUser.Sanitized(), nil
}

// SignIn verifies the credentials and returns a signed access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (a *Auth) SignIn(ctx context.Context, email, pass string) (string, error) {
	a.logger.Debug("Auth service: starting user signin",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return "", apierr.NewErrInvalidCredentials()
	}
	if err != nil {
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	match, err := a.hasher.Verify(ctx, user.PasswordHash, pass)
	if err != nil {
		if errors.Is(err, password.ErrInvalidHash) {
			// Stored hash is corrupt; an operational problem, not a
			// credential mismatch.
			a.logger.Error("Auth service: stored password hash is unparseable",
				"user_id", user.ID)
			return "", apierr.NewErrHashingFailure(err)
		}
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return "", apierr.NewErrInvalidCredentials()
	}

	accessToken, err := a.tokenService.Issue(ctx, user.Sanitized())
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user signin completed",
		"user_id", user.ID)

	return accessToken, nil
}

// GetUser returns the stored user for an authenticated identity, sanitized.
func (a *Auth) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		// The id came from a verified token, so a missing row means the
		// account is gone; the token is no longer good for anything.
		return model.User{}, apierr.NewErrInvalidAuthorizationToken()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Sanitized(), nil
}
