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
)

// Bookmark manages user-owned bookmarks. Every per-id operation fetches the
// row owner-agnostically and checks ownership before touching it; list reads
// are pre-filtered by owner in the store.
type Bookmark struct {
	bookmarkStore model.BookmarkStore
	logger        *logger.Logger
}

func NewBookmark(bookmarkStore model.BookmarkStore, logger *logger.Logger) *Bookmark {
	return &Bookmark{
		bookmarkStore: bookmarkStore,
		logger:        logger,
	}
}

func (s *Bookmark) CreateBookmark(ctx context.Context, params model.CreateBookmarkParams) (model.Bookmark, error) {
	now := time.Now()
	bookmark := model.Bookmark{
		ID:          uuid.New(),
		OwnerID:     params.OwnerID,
		Title:       params.Title,
		Description: params.Description,
		URL:         params.URL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	saved, err := s.bookmarkStore.Create(ctx, bookmark)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to create bookmark: %w", err)
	}

	s.logger.Info("Bookmark service: bookmark created",
		"bookmark_id", saved.ID,
		"owner_id", saved.OwnerID)

	return saved, nil
}

func (s *Bookmark) GetBookmarks(ctx context.Context, ownerID uuid.UUID) ([]model.Bookmark, error) {
	bookmarks, err := s.bookmarkStore.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks by owner id: %w", err)
	}

	return bookmarks, nil
}

func (s *Bookmark) GetBookmark(ctx context.Context, ownerID, bookmarkID uuid.UUID) (model.Bookmark, error) {
	bookmark, err := s.guard(ctx, ownerID, bookmarkID)
	if err != nil {
		return model.Bookmark{}, err
	}

	return bookmark, nil
}

func (s *Bookmark) UpdateBookmark(ctx context.Context, ownerID, bookmarkID uuid.UUID, patch model.UpdateBookmarkParams) (model.Bookmark, error) {
	bookmark, err := s.guard(ctx, ownerID, bookmarkID)
	if err != nil {
		return model.Bookmark{}, err
	}

	if patch.Title != nil {
		bookmark.Title = *patch.Title
	}
	if patch.Description != nil {
		bookmark.Description = *patch.Description
	}
	if patch.URL != nil {
		bookmark.URL = *patch.URL
	}
	bookmark.UpdatedAt = time.Now()

	saved, err := s.bookmarkStore.Update(ctx, bookmark)
	if errors.Is(err, model.ErrNotFound) {
		// Deleted between the guard fetch and the update; same outcome as
		// never having existed.
		return model.Bookmark{}, apierr.NewErrBookmarkNotFound()
	}
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to update bookmark: %w", err)
	}

	return saved, nil
}

func (s *Bookmark) DeleteBookmark(ctx context.Context, ownerID, bookmarkID uuid.UUID) error {
	if _, err := s.guard(ctx, ownerID, bookmarkID); err != nil {
		return err
	}

	err := s.bookmarkStore.Delete(ctx, bookmarkID)
	if errors.Is(err, model.ErrNotFound) {
		return apierr.NewErrBookmarkNotFound()
	}
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	s.logger.Info("Bookmark service: bookmark deleted",
		"bookmark_id", bookmarkID,
		"owner_id", ownerID)

	return nil
}

// guard fetches the bookmark and enforces ownership. An absent row and a
// foreign row come back as distinct error kinds, though the transport shows
// them identically.
func (s *Bookmark) guard(ctx context.Context, ownerID, bookmarkID uuid.UUID) (model.Bookmark, error) {
	bookmark, err := s.bookmarkStore.GetByID(ctx, bookmarkID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Bookmark{}, apierr.NewErrBookmarkNotFound()
	}
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to get bookmark by id: %w", err)
	}

	if bookmark.OwnerID != ownerID {
		return model.Bookmark{}, apierr.NewErrAccessDenied()
	}

	return bookmark, nil
}
