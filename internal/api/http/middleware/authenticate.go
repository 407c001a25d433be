package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dkulagin/bookmarkd/internal/apierr"
	"github.com/dkulagin/bookmarkd/internal/logger"
	"github.com/dkulagin/bookmarkd/internal/model"
)

// TokenService resolves identities from bearer tokens.
type TokenService interface {
	GetIdentity(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the caller's identity
// into the request context.
type Authenticate struct {
	tokenService   TokenService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenService TokenService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenService: tokenService, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and stores the
// identity in the request context before calling the next handler.
func (m *Authenticate) Handle(c *fiber.Ctx) error {
	tokenString := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")

	identity, err := m.authenticate(c.UserContext(), tokenString)
	if err != nil {
		return err
	}

	c.SetUserContext(m.contextManager.SetIdentityToContext(c.UserContext(), identity))

	return c.Next()
}

func (m *Authenticate) authenticate(ctx context.Context, tokenString string) (model.Identity, error) {
	if tokenString == "" {
		return model.Identity{}, apierr.NewErrMissingAuthorizationToken()
	}

	identity, err := m.tokenService.GetIdentity(ctx, tokenString)
	if err != nil {
		return model.Identity{}, apierr.NewErrInvalidAuthorizationToken()
	}

	if identity.UserID == uuid.Nil {
		return model.Identity{}, apierr.NewErrInvalidAuthorizationToken()
	}

	return identity, nil
}
