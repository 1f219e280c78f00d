package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc-dev/links-service/internal/model"
	"github.com/google/uuid"
)

// FileStore декоратор над Store, который добавляет персистентность через файл
type FileStore struct {
	store       *Store
	fileStorage *FileStorage

	// mu сериализует вставки: запись в память и дозапись в файл образуют
	// одну критическую секцию, поэтому порядок записей в файле совпадает
	// с порядком вставок и восстановление после перезапуска дает тот же
	// индекс отпечатков
	mu sync.Mutex
}

// NewFileStore создаёт FileStore и загружает данные из файла
func NewFileStore(filePath string) (*FileStore, error) {
	fs := &FileStore{
		store:       NewStore(),
		fileStorage: NewFileStorage(filePath),
	}

	if err := fs.loadFromFile(); err != nil {
		return nil, fmt.Errorf("failed to load data from file: %w", err)
	}

	return fs, nil
}

// loadFromFile восстанавливает in-memory состояние из файла при старте
func (fs *FileStore) loadFromFile() error {
	entries, err := fs.fileStorage.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, entry := range entries {
		link := entryToLink(entry)
		if err := fs.store.Insert(ctx, &link); err != nil {
			return fmt.Errorf("failed to restore entry %s: %w", entry.Slug, err)
		}
	}

	return nil
}

// FindBySlug читает ссылку из in-memory индекса
func (fs *FileStore) FindBySlug(ctx context.Context, slug model.Slug) (*model.Link, error) {
	return fs.store.FindBySlug(ctx, slug)
}

// FindByFingerprint читает первую ссылку с данным отпечатком из in-memory индекса
func (fs *FileStore) FindByFingerprint(ctx context.Context, hash string) (*model.Link, error) {
	return fs.store.FindByFingerprint(ctx, hash)
}

// Insert атомарно сохраняет ссылку в памяти и дописывает ее в файл
// При сбое записи на диск вставка в память откатывается: частично
// созданная ссылка не должна быть видна последующим запросам
func (fs *FileStore) Insert(ctx context.Context, link *model.Link) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.store.Insert(ctx, link); err != nil {
		return err
	}

	if err := fs.fileStorage.Append(linkToEntry(link)); err != nil {
		fs.store.remove(link.Slug)
		return fmt.Errorf("failed to append to file: %w", err)
	}

	return nil
}

// Ping проверяет доступность хранилища
func (fs *FileStore) Ping(ctx context.Context) error {
	return fs.store.Ping(ctx)
}

func linkToEntry(link *model.Link) LinkEntry {
	return LinkEntry{
		UUID:            uuid.New().String(),
		Slug:            string(link.Slug),
		OriginalURL:     string(link.OriginalURL),
		OriginalURLHash: link.OriginalURLHash,
		OwnerID:         link.OwnerID,
		PasswordHash:    link.PasswordHash,
		IsActive:        link.IsActive,
		CreatedAt:       link.CreatedAt,
		ExpiresAt:       link.ExpiresAt,
		ClickCount:      link.ClickCount,
		Notes:           link.Notes,
	}
}

func entryToLink(entry LinkEntry) model.Link {
	return model.Link{
		Slug:            model.Slug(entry.Slug),
		OriginalURL:     model.URL(entry.OriginalURL),
		OriginalURLHash: entry.OriginalURLHash,
		OwnerID:         entry.OwnerID,
		PasswordHash:    entry.PasswordHash,
		IsActive:        entry.IsActive,
		CreatedAt:       entry.CreatedAt,
		ExpiresAt:       entry.ExpiresAt,
		ClickCount:      entry.ClickCount,
		Notes:           entry.Notes,
	}
}
