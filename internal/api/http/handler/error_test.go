package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkulagin/bookmarkd/internal/apierr"
	"github.com/dkulagin/bookmarkd/internal/model"
	"github.com/dkulagin/bookmarkd/internal/testutil"
)

func TestNewErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{
			name:        "api error",
			err:         apierr.NewErrEmailTaken(),
			wantStatus:  http.StatusConflict,
			wantMessage: "email already exists",
			wantCode:    "email_taken",
		},
		{
			name:        "wrapped api error",
			err:         apierr.NewErrHashingFailure(errors.New("entropy source unavailable")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
			wantCode:    "hashing_failure",
		},
		{
			name:        "fiber error",
			err:         fiber.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "model not found",
			err:         model.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "not found",
		},
		{
			name:        "unexpected error",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := fiber.New(fiber.Config{
				ErrorHandler: NewErrorHandler(testutil.MakeNoopLogger()),
			})
			app.Get("/boom", func(c *fiber.Ctx) error {
				return tt.err
			})

			req := httptest.NewRequest(http.MethodGet, "/boom", nil)

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeJSON[map[string]any](t, resp)
			assert.Equal(t, tt.wantMessage, body["error"])
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, body["code"])
			}
		})
	}

	t.Run("internal detail never leaks", func(t *testing.T) {
		t.Parallel()

		app := fiber.New(fiber.Config{
			ErrorHandler: NewErrorHandler(testutil.MakeNoopLogger()),
		})
		app.Get("/boom", func(c *fiber.Ctx) error {
			return errors.New("pq: password authentication failed for user postgres")
		})

		req := httptest.NewRequest(http.MethodGet, "/boom", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		body := decodeJSON[map[string]any](t, resp)
		assert.NotContains(t, body["error"], "postgres")
	})
}
