package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dkulagin/bookmarkd/internal/model"
)

var _ model.BookmarkStore = (*BookmarkRepository)(nil)

type BookmarkRepository struct {
	db *Connection
}

func NewBookmarkRepository(db *Connection) *BookmarkRepository {
	return &BookmarkRepository{
		db: db,
	}
}

func (r *BookmarkRepository) Create(ctx context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	query := `INSERT INTO bookmarks (id, owner_id, title, description, url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING id, owner_id, title, description, url, created_at, updated_at`

	var saved model.Bookmark
	err := r.db.QueryRow(ctx, query,
		bookmark.ID, bookmark.OwnerID, bookmark.Title, bookmark.Description, bookmark.URL,
		bookmark.CreatedAt, bookmark.UpdatedAt,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Title, &saved.Description, &saved.URL,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		return model.Bookmark{}, fmt.Errorf("failed to create bookmark: %w", err)
	}

	return saved, nil
}

// GetByID fetches a bookmark regardless of owner; the service layer decides
// whether the caller may see it.
func (r *BookmarkRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Bookmark, error) {
	query := `SELECT id, owner_id, title, description, url, created_at, updated_at
			  FROM bookmarks WHERE id = $1`

	var bookmark model.Bookmark
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bookmark.ID, &bookmark.OwnerID, &bookmark.Title, &bookmark.Description, &bookmark.URL,
		&bookmark.CreatedAt, &bookmark.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bookmark{}, model.ErrNotFound
		}
		return model.Bookmark{}, fmt.Errorf("failed to get bookmark by id: %w", err)
	}

	return bookmark, nil
}

// GetByOwnerID returns only the owner's rows; foreign bookmarks are
// structurally unreachable through this query.
func (r *BookmarkRepository) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Bookmark, error) {
	query := `SELECT id, owner_id, title, description, url, created_at, updated_at
			  FROM bookmarks WHERE owner_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmarks by owner id: %w", err)
	}
	defer rows.Close()

	var bookmarks []model.Bookmark
	for rows.Next() {
		var bookmark model.Bookmark
		err := rows.Scan(
			&bookmark.ID, &bookmark.OwnerID, &bookmark.Title, &bookmark.Description, &bookmark.URL,
			&bookmark.CreatedAt, &bookmark.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookmark rows: %w", err)
	}

	return bookmarks, nil
}

func (r *BookmarkRepository) Update(ctx context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	query := `UPDATE bookmarks
			  SET title = $2, description = $3, url = $4, updated_at = $5
			  WHERE id = $1
			  RETURNING id, owner_id, title, description, url, created_at, updated_at`

	var saved model.Bookmark
	err := r.db.QueryRow(ctx, query,
		bookmark.ID, bookmark.Title, bookmark.Description, bookmark.URL, bookmark.UpdatedAt,
	).Scan(
		&saved.ID, &saved.OwnerID, &saved.Title, &saved.Description, &saved.URL,
		&saved.CreatedAt, &saved.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Bookmark{}, model.ErrNotFound
		}
		return model.Bookmark{}, fmt.Errorf("failed to update bookmark: %w", err)
	}

	return saved, nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM bookmarks WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
