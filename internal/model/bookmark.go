package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// BookmarkStore defines persistence operations for bookmarks.
type BookmarkStore interface {
	Create(ctx context.Context, bookmark Bookmark) (Bookmark, error)
	GetByID(ctx context.Context, id uuid.UUID) (Bookmark, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Bookmark, error)
	Update(ctx context.Context, bookmark Bookmark) (Bookmark, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Bookmark represents a stored bookmark entity. OwnerID is immutable after
// creation and is the only input to ownership checks.
type Bookmark struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	URL         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CreateBookmarkParams contains parameters to create a bookmark.
type CreateBookmarkParams struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	URL         string
}

// UpdateBookmarkParams is a partial patch; nil fields stay unchanged.
type UpdateBookmarkParams struct {
	Title       *string
	Description *string
	URL         *string
}
