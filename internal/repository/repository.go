package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/links-service/internal/model"
)

// Store определяет низкоуровневый контракт хранилища ссылок
// Реализации: in-memory, файловое и PostgreSQL хранилища
type Store interface {
	FindBySlug(ctx context.Context, slug model.Slug) (*model.Link, error)
	FindByFingerprint(ctx context.Context, hash string) (*model.Link, error)
	Insert(ctx context.Context, link *model.Link) error
	Ping(ctx context.Context) error
}

// Repository абстрагирует доступ к записям ссылок
// Дескриптор хранилища передается через конструктор, без глобального состояния
type Repository struct {
	underlying Store
}

// New создает Repository поверх переданного хранилища
func New(underlying Store) *Repository {
	return &Repository{underlying}
}

// Ping проверяет доступность хранилища
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.underlying.Ping(ctx); err != nil {
		return fmt.Errorf("store is unavailable: %w", err)
	}
	return nil
}
