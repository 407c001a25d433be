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

// BookmarkService defines business operations for bookmark management.
type BookmarkService interface {
	CreateBookmark(ctx context.Context, params model.CreateBookmarkParams) (model.Bookmark, error)
	GetBookmarks(ctx context.Context, ownerID uuid.UUID) ([]model.Bookmark, error)
	GetBookmark(ctx context.Context, ownerID, bookmarkID uuid.UUID) (model.Bookmark, error)
	UpdateBookmark(ctx context.Context, ownerID, bookmarkID uuid.UUID, patch model.UpdateBookmarkParams) (model.Bookmark, error)
	DeleteBookmark(ctx context.Context, ownerID, bookmarkID uuid.UUID) error
}

// Bookmark handles HTTP endpoints for bookmarks.
type Bookmark struct {
	bookmarkService BookmarkService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewBookmark creates a new Bookmark handler.
func NewBookmark(bookmarkService BookmarkService, contextManager model.ContextManager, logger *logger.Logger) *Bookmark {
	return &Bookmark{
		bookmarkService: bookmarkService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type createBookmarkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type updateBookmarkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	URL         *string `json:"url"`
}

type bookmarkResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// List returns the caller's bookmarks.
func (h *Bookmark) List(c *fiber.Ctx) error {
	identity, err := h.identity(c)
	if err != nil {
		return err
	}

	bookmarks, err := h.bookmarkService.GetBookmarks(c.UserContext(), identity.UserID)
	if err != nil {
		return err
	}

	resp := make([]bookmarkResponse, 0, len(bookmarks))
	for _, b := range bookmarks {
		resp = append(resp, toBookmarkResponse(b))
	}

	return c.JSON(resp)
}

// Create stores a new bookmark owned by the caller.
func (h *Bookmark) Create(c *fiber.Ctx) error {
	identity, err := h.identity(c)
	if err != nil {
		return err
	}

	var req createBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.NewErrInvalidArgument("malformed request body")
	}
	if req.Title == "" || req.URL == "" {
		return apierr.NewErrInvalidArgument("title and url are required")
	}

	bookmark, err := h.bookmarkService.CreateBookmark(c.UserContext(), model.CreateBookmarkParams{
		OwnerID:     identity.UserID,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toBookmarkResponse(bookmark))
}

// Get returns one of the caller's bookmarks by id.
func (h *Bookmark) Get(c *fiber.Ctx) error {
	identity, err := h.identity(c)
	if err != nil {
		return err
	}

	bookmarkID, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	bookmark, err := h.bookmarkService.GetBookmark(c.UserContext(), identity.UserID, bookmarkID)
	if err != nil {
		return err
	}

	return c.JSON(toBookmarkResponse(bookmark))
}

// Update applies a partial patch to one of the caller's bookmarks.
func (h *Bookmark) Update(c *fiber.Ctx) error {
	identity, err := h.identity(c)
	if err != nil {
		return err
	}

	bookmarkID, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	var req updateBookmarkRequest
	if err := c.BodyParser(&req); err != nil {
		return apierr.NewErrInvalidArgument("malformed request body")
	}

	bookmark, err := h.bookmarkService.UpdateBookmark(c.UserContext(), identity.UserID, bookmarkID, model.UpdateBookmarkParams{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		return err
	}

	return c.JSON(toBookmarkResponse(bookmark))
}

// Delete removes one of the caller's bookmarks.
func (h *Bookmark) Delete(c *fiber.Ctx) error {
	identity, err := h.identity(c)
	if err != nil {
		return err
	}

	bookmarkID, err := parseBookmarkID(c)
	if err != nil {
		return err
	}

	if err := h.bookmarkService.DeleteBookmark(c.UserContext(), identity.UserID, bookmarkID); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Bookmark) identity(c *fiber.Ctx) (model.Identity, error) {
	identity, ok := h.contextManager.GetIdentityFromContext(c.UserContext())
	if !ok {
		return model.Identity{}, apierr.NewErrMissingAuthorizationToken()
	}
	return identity, nil
}

func parseBookmarkID(c *fiber.Ctx) (uuid.UUID, error) {
	bookmarkID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apierr.NewErrInvalidArgument("invalid bookmark id")
	}
	return bookmarkID, nil
}

func toBookmarkResponse(b model.Bookmark) bookmarkResponse {
	return bookmarkResponse{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		Description: b.Description,
		URL:         b.URL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
