package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/links-service/internal/model"
	"github.com/avc-dev/links-service/internal/store"
)

// FindByFingerprint возвращает первую ссылку с данным отпечатком URL
// или nil, если таких записей нет. Отпечаток не является ключом уникальности:
// при нескольких совпадениях выбирается самая ранняя запись
func (r *Repository) FindByFingerprint(ctx context.Context, hash string) (*model.Link, error) {
	link, err := r.underlying.FindByFingerprint(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find link by fingerprint: %w", err)
	}

	return link, nil
}
