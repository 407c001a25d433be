package model

import "github.com/google/uuid"

// Identity is the authenticated caller reconstructed from a verified token.
// It lives only for the duration of a request.
type Identity struct {
	UserID uuid.UUID
	Email  string
}
