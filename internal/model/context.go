package model

import "context"

// ContextManager threads the authenticated identity through the request
// context. Identity is request-scoped state, never an ambient lookup.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}
