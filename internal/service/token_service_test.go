package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkulagin/bookmarkd/internal/apierr"
	"github.com/dkulagin/bookmarkd/internal/mocks"
	"github.com/dkulagin/bookmarkd/internal/model"
	"github.com/dkulagin/bookmarkd/internal/testutil"
)

func TestTokenService_Issue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	user := model.User{ID: uuid.New(), Email: "user@example.com"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		manager := mocks.NewTokenManager(t)
		svc := NewTokenService(manager, testutil.MakeNoopLogger())

		manager.On("GenerateAccessToken", user.ID, user.Email).Return("signed-token", nil)

		accessToken, err := svc.Issue(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", accessToken)
	})

	t.Run("signing failure", func(t *testing.T) {
		t.Parallel()

		manager := mocks.NewTokenManager(t)
		svc := NewTokenService(manager, testutil.MakeNoopLogger())

		manager.On("GenerateAccessToken", user.ID, user.Email).
			Return("", errors.New("key unavailable"))

		_, err := svc.Issue(ctx, user)
		assert.ErrorIs(t, err, apierr.NewErrSigningFailure(nil))
	})
}

func TestTokenService_GetIdentity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		manager := mocks.NewTokenManager(t)
		svc := NewTokenService(manager, testutil.MakeNoopLogger())

		expected := model.Identity{UserID: uuid.New(), Email: "user@example.com"}
		manager.On("ParseAccessToken", "some-token").Return(expected, nil)

		identity, err := svc.GetIdentity(ctx, "some-token")
		require.NoError(t, err)
		assert.Equal(t, expected, identity)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Parallel()

		manager := mocks.NewTokenManager(t)
		svc := NewTokenService(manager, testutil.MakeNoopLogger())

		manager.On("ParseAccessToken", "bad-token").
			Return(model.Identity{}, errors.New("signature mismatch"))

		_, err := svc.GetIdentity(ctx, "bad-token")
		assert.Error(t, err)
	})
}
