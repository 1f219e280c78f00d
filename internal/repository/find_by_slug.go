package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/links-service/internal/model"
	"github.com/avc-dev/links-service/internal/store"
)

// FindBySlug возвращает ссылку по slug или nil, если такой записи нет
// Ошибка возвращается только при проблемах с хранилищем, не при отсутствии записи
func (r *Repository) FindBySlug(ctx context.Context, slug model.Slug) (*model.Link, error) {
	link, err := r.underlying.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find link by slug: %w", err)
	}

	return link, nil
}
