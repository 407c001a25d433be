package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dkulagin/bookmarkd/internal/apierr"
	"github.com/dkulagin/bookmarkd/internal/logger"
	"github.com/dkulagin/bookmarkd/internal/model"
)

// AuthService defines user signup, signin and lookup operations.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (model.User, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// SignUp registers a new user and returns it without credential material.
func (h *Auth) SignUp(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return err
	}

	user, err := h.authService.SignUp(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(userResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// SignIn verifies credentials and returns an access token.
func (h *Auth) SignIn(c *fiber.Ctx) error {
	req, err := parseCredentials(c)
	if err != nil {
		return err
	}

	accessToken, err := h.authService.SignIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		h.logger.Debug("Auth handler: signin failed",
			"email", req.Email,
			"error", err.Error())
		return err
	}

	return c.JSON(tokenResponse{AccessToken: accessToken})
}

// Me returns the authenticated caller's user record.
func (h *Auth) Me(c *fiber.Ctx) error {
	identity, ok := h.contextManager.GetIdentityFromContext(c.UserContext())
	if !ok {
		return apierr.NewErrMissingAuthorizationToken()
	}

	user, err := h.authService.GetUser(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}

	return c.JSON(userResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

func parseCredentials(c *fiber.Ctx) (credentialsRequest, error) {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return credentialsRequest{}, apierr.NewErrInvalidArgument("malformed request body")
	}
	if req.Email == "" || req.Password == "" {
		return credentialsRequest{}, apierr.NewErrInvalidArgument("email and password are required")
	}
	return req, nil
}
