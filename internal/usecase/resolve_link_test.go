package usecase

import (
	"context"
	"testing"

	"github.com/avc-dev/links-service/internal/model"
	"github.com/avc-dev/links-service/internal/service"
	"github.com/avc-dev/links-service/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolveLink_Success проверяет разрешение активной ссылки
func TestResolveLink_Success(t *testing.T) {
	// Arrange
	st := store.NewStore()
	u := newTestUsecase(st)
	ctx := context.Background()

	result, err := u.CreateLink(ctx, CreateLinkParams{
		OriginalURL: "https://example.com/a",
		IsActive:    true,
		OwnerID:     "owner-1",
	})
	require.NoError(t, err)

	// Act
	link, err := u.ResolveLink(ctx, result.Slug.String(), "")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com/a"), link.OriginalURL)
}

// TestResolveLink_NotFound проверяет разрешение несуществующего slug
func TestResolveLink_NotFound(t *testing.T) {
	u := newTestUsecase(store.NewStore())

	_, err := u.ResolveLink(context.Background(), "missing1", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

// TestResolveLink_Inactive проверяет, что неактивная ссылка неотличима от отсутствующей
func TestResolveLink_Inactive(t *testing.T) {
	// Arrange
	st := store.NewStore()
	u := newTestUsecase(st)
	ctx := context.Background()

	result, err := u.CreateLink(ctx, CreateLinkParams{
		OriginalURL: "https://example.com/hidden",
		IsActive:    false,
		OwnerID:     "owner-1",
	})
	require.NoError(t, err)

	// Act
	_, err = u.ResolveLink(ctx, result.Slug.String(), "")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLinkNotFound)
}

// TestResolveLink_Protected проверяет доступ к защищенной паролем ссылке
func TestResolveLink_Protected(t *testing.T) {
	// Arrange
	st := store.NewStore()
	u := newTestUsecase(st)
	ctx := context.Background()

	result, err := u.CreateLink(ctx, CreateLinkParams{
		OriginalURL: "https://example.com/secret",
		Password:    "securepass",
		IsActive:    true,
		OwnerID:     "owner-1",
	})
	require.NoError(t, err)

	tests := []struct {
		name        string
		password    string
		expectedErr error
	}{
		{
			name:     "Correct password",
			password: "securepass",
		},
		{
			name:        "Wrong password",
			password:    "wrongpass",
			expectedErr: ErrPasswordRequired,
		},
		{
			name:        "Missing password",
			password:    "",
			expectedErr: ErrPasswordRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			link, err := u.ResolveLink(ctx, result.Slug.String(), tt.password)

			// Assert
			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, service.Fingerprint("https://example.com/secret"), link.OriginalURLHash)
		})
	}
}

// TestResolveLink_StoreUnavailable проверяет сбой хранилища при разрешении
func TestResolveLink_StoreUnavailable(t *testing.T) {
	u := newTestUsecase(&brokenStore{})

	_, err := u.ResolveLink(context.Background(), "any1234", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
