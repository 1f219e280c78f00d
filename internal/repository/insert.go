package repository

import (
	"context"
	"fmt"

	"github.com/avc-dev/links-service/internal/model"
)

// Insert атомарно сохраняет ссылку
// Возвращает ошибку, оборачивающую store.ErrAlreadyExists, если slug уже занят -
// вставка является финальным арбитром уникальности под конкурентной нагрузкой
func (r *Repository) Insert(ctx context.Context, link *model.Link) error {
	if err := r.underlying.Insert(ctx, link); err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}

	return nil
}
