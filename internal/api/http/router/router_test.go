package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkulagin/bookmarkd/internal/api/http/appcontext"
	"github.com/dkulagin/bookmarkd/internal/model"
	"github.com/dkulagin/bookmarkd/internal/password"
	"github.com/dkulagin/bookmarkd/internal/service"
	"github.com/dkulagin/bookmarkd/internal/testutil"
	"github.com/dkulagin/bookmarkd/internal/token"
)

// memoryUserStore is a map-backed UserStore with the same error contract as
// the postgres implementation.
type memoryUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: make(map[uuid.UUID]model.User)}
}

func (s *memoryUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return model.User{}, model.ErrDuplicateEmail
		}
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *memoryUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memoryUserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return user, nil
}

type memoryBookmarkStore struct {
	mu        sync.Mutex
	bookmarks map[uuid.UUID]model.Bookmark
}

func newMemoryBookmarkStore() *memoryBookmarkStore {
	return &memoryBookmarkStore{bookmarks: make(map[uuid.UUID]model.Bookmark)}
}

func (s *memoryBookmarkStore) Create(_ context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookmarks[bookmark.ID] = bookmark
	return bookmark, nil
}

func (s *memoryBookmarkStore) GetByID(_ context.Context, id uuid.UUID) (model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmark, ok := s.bookmarks[id]
	if !ok {
		return model.Bookmark{}, model.ErrNotFound
	}
	return bookmark, nil
}

func (s *memoryBookmarkStore) GetByOwnerID(_ context.Context, ownerID uuid.UUID) ([]model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	owned := make([]model.Bookmark, 0)
	for _, bookmark := range s.bookmarks {
		if bookmark.OwnerID == ownerID {
			owned = append(owned, bookmark)
		}
	}
	return owned, nil
}

func (s *memoryBookmarkStore) Update(_ context.Context, bookmark model.Bookmark) (model.Bookmark, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookmarks[bookmark.ID]; !ok {
		return model.Bookmark{}, model.ErrNotFound
	}
	s.bookmarks[bookmark.ID] = bookmark
	return bookmark, nil
}

func (s *memoryBookmarkStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bookmarks[id]; !ok {
		return model.ErrNotFound
	}
	delete(s.bookmarks, id)
	return nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	log := testutil.MakeNoopLogger()
	hasher := password.NewHasher(password.Params{Time: 1, MemKiB: 1024, Par: 1}, 2)
	tokenService := service.NewTokenService(token.NewJWT("router-test-secret"), log)
	authService := service.NewAuth(newMemoryUserStore(), hasher, tokenService, log)
	bookmarkService := service.NewBookmark(newMemoryBookmarkStore(), log)

	return New(authService, bookmarkService, tokenService, appcontext.NewManager(), log).Register()
}

func doJSON(t *testing.T, app *fiber.App, method, target, bearer string, body any) (int, map[string]any, []map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var obj map[string]any
	var list []map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &obj))
	}
	if len(raw) > 0 && raw[0] == '[' {
		require.NoError(t, json.Unmarshal(raw, &list))
	}

	return resp.StatusCode, obj, list
}

func signUpAndSignIn(t *testing.T, app *fiber.App, email, pass string) string {
	t.Helper()

	status, _, _ := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"email":    email,
		"password": pass,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body, _ := doJSON(t, app, http.MethodPost, "/auth/signin", "", fiber.Map{
		"email":    email,
		"password": pass,
	})
	require.Equal(t, http.StatusOK, status)

	accessToken, ok := body["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, accessToken)
	return accessToken
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "api is running", string(raw))
}

func TestRouter_AuthFlow(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	status, body, _ := doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"email":    "user@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "user@example.com", body["email"])
	assert.NotContains(t, body, "password_hash")

	// Same email again conflicts.
	status, body, _ = doJSON(t, app, http.MethodPost, "/auth/signup", "", fiber.Map{
		"email":    "user@example.com",
		"password": "different-password",
	})
	require.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "email_taken", body["code"])

	// Wrong password and unknown email produce the same response.
	status, wrongPass, _ := doJSON(t, app, http.MethodPost, "/auth/signin", "", fiber.Map{
		"email":    "user@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, status)

	status, unknown, _ := doJSON(t, app, http.MethodPost, "/auth/signin", "", fiber.Map{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, wrongPass["error"], unknown["error"])

	status, body, _ = doJSON(t, app, http.MethodPost, "/auth/signin", "", fiber.Map{
		"email":    "user@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, status)
	accessToken := body["access_token"].(string)

	status, body, _ = doJSON(t, app, http.MethodGet, "/users/me", accessToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "user@example.com", body["email"])

	status, _, _ = doJSON(t, app, http.MethodGet, "/users/me", "tampered"+accessToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRouter_BookmarkFlow(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	accessToken := signUpAndSignIn(t, app, "owner@example.com", "password123")

	// Requests without a token never reach the handlers.
	status, _, _ := doJSON(t, app, http.MethodGet, "/bookmarks/", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, created, _ := doJSON(t, app, http.MethodPost, "/bookmarks/", accessToken, fiber.Map{
		"title":       "Go blog",
		"description": "official blog",
		"url":         "https://go.dev/blog",
	})
	require.Equal(t, http.StatusCreated, status)
	bookmarkID := created["id"].(string)
	require.NotEmpty(t, bookmarkID)

	status, _, list := doJSON(t, app, http.MethodGet, "/bookmarks/", accessToken, nil)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, list, 1)
	assert.Equal(t, bookmarkID, list[0]["id"])

	status, got, _ := doJSON(t, app, http.MethodGet, "/bookmarks/"+bookmarkID, accessToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Go blog", got["title"])

	status, updated, _ := doJSON(t, app, http.MethodPatch, "/bookmarks/"+bookmarkID, accessToken, fiber.Map{
		"title": "The Go Blog",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "The Go Blog", updated["title"])
	assert.Equal(t, "official blog", updated["description"])

	status, _, _ = doJSON(t, app, http.MethodDelete, "/bookmarks/"+bookmarkID, accessToken, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _, list = doJSON(t, app, http.MethodGet, "/bookmarks/", accessToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, list)

	status, _, _ = doJSON(t, app, http.MethodGet, "/bookmarks/"+bookmarkID, accessToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_OwnershipIsolation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	ownerToken := signUpAndSignIn(t, app, "owner@example.com", "password123")
	otherToken := signUpAndSignIn(t, app, "other@example.com", "password456")

	status, created, _ := doJSON(t, app, http.MethodPost, "/bookmarks/", ownerToken, fiber.Map{
		"title": "private",
		"url":   "https://private.example.com",
	})
	require.Equal(t, http.StatusCreated, status)
	bookmarkID := created["id"].(string)

	// The other user's list does not include it.
	status, _, list := doJSON(t, app, http.MethodGet, "/bookmarks/", otherToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, list)

	// Direct reads, updates and deletes by the other user all look like the
	// bookmark does not exist.
	status, body, _ := doJSON(t, app, http.MethodGet, "/bookmarks/"+bookmarkID, otherToken, nil)
	require.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "bookmark not found", body["error"])

	status, _, _ = doJSON(t, app, http.MethodPatch, "/bookmarks/"+bookmarkID, otherToken, fiber.Map{
		"title": "stolen",
	})
	require.Equal(t, http.StatusNotFound, status)

	status, _, _ = doJSON(t, app, http.MethodDelete, "/bookmarks/"+bookmarkID, otherToken, nil)
	require.Equal(t, http.StatusNotFound, status)

	// The owner still sees the bookmark untouched.
	status, got, _ := doJSON(t, app, http.MethodGet, "/bookmarks/"+bookmarkID, ownerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "private", got["title"])
}
