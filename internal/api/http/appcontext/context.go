// Package appcontext carries the authenticated identity through the request
// context. Identity is set once by the authenticate middleware and read by
// handlers; nothing is cached across requests.
package appcontext

import (
	"context"

	"github.com/dkulagin/bookmarkd/internal/model"
)

type contextKey int

const identityKey contextKey = iota

// Manager implements model.ContextManager on top of context values.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a child context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext retrieves the identity set by the middleware.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(model.Identity)
	return identity, ok
}
