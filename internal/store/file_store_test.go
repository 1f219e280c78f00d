package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/avc-dev/links-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileStore_PersistsAcrossRestart проверяет восстановление состояния из файла
func TestFileStore_PersistsAcrossRestart(t *testing.T) {
	// Arrange
	filePath := filepath.Join(t.TempDir(), "links.jsonl")
	ctx := context.Background()

	expires := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	link := &model.Link{
		Slug:            "abc1234",
		OriginalURL:     "https://example.com",
		OriginalURLHash: "hash-a",
		OwnerID:         "owner-1",
		PasswordHash:    "$2a$10$fakehash",
		IsActive:        true,
		CreatedAt:       time.Now().UTC().Truncate(time.Second),
		ExpiresAt:       &expires,
		Notes:           "test link",
	}

	first, err := NewFileStore(filePath)
	require.NoError(t, err)
	require.NoError(t, first.Insert(ctx, link))

	// Act - новый экземпляр читает тот же файл
	second, err := NewFileStore(filePath)
	require.NoError(t, err)

	// Assert
	restored, err := second.FindBySlug(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, link.OriginalURL, restored.OriginalURL)
	assert.Equal(t, link.OriginalURLHash, restored.OriginalURLHash)
	assert.Equal(t, link.OwnerID, restored.OwnerID)
	assert.Equal(t, link.PasswordHash, restored.PasswordHash)
	assert.Equal(t, link.Notes, restored.Notes)
	require.NotNil(t, restored.ExpiresAt)
	assert.True(t, expires.Equal(*restored.ExpiresAt))

	byHash, err := second.FindByFingerprint(ctx, "hash-a")
	require.NoError(t, err)
	assert.Equal(t, model.Slug("abc1234"), byHash.Slug)
}

// TestFileStore_DuplicateSlug проверяет, что конфликт slug не пишется в файл
func TestFileStore_DuplicateSlug(t *testing.T) {
	// Arrange
	filePath := filepath.Join(t.TempDir(), "links.jsonl")
	ctx := context.Background()

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	require.NoError(t, fs.Insert(ctx, testLink("abc1234", "https://example.com/a", "hash-a")))

	// Act
	err = fs.Insert(ctx, testLink("abc1234", "https://example.com/b", "hash-b"))

	// Assert
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Перезапуск не должен падать на дубликате в файле
	restarted, err := NewFileStore(filePath)
	require.NoError(t, err)

	found, err := restarted.FindBySlug(ctx, "abc1234")
	require.NoError(t, err)
	assert.Equal(t, model.URL("https://example.com/a"), found.OriginalURL)
}

// TestFileStore_AppendFailureRollsBack проверяет атомарность вставки:
// при сбое записи на диск запись не остается в памяти
func TestFileStore_AppendFailureRollsBack(t *testing.T) {
	// Arrange - путь в несуществующем каталоге, дозапись обречена на ошибку
	filePath := filepath.Join(t.TempDir(), "missing-dir", "links.jsonl")
	ctx := context.Background()

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	// Act
	err = fs.Insert(ctx, testLink("abc1234", "https://example.com", "hash-a"))

	// Assert - ни по slug, ни по отпечатку записи не видно
	require.Error(t, err)

	_, err = fs.FindBySlug(ctx, "abc1234")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = fs.FindByFingerprint(ctx, "hash-a")
	assert.ErrorIs(t, err, ErrNotFound)
}

// TestFileStore_EmptyFile проверяет старт с отсутствующим файлом
func TestFileStore_EmptyFile(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "missing.jsonl")

	fs, err := NewFileStore(filePath)
	require.NoError(t, err)

	_, err = fs.FindBySlug(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrNotFound)
}
