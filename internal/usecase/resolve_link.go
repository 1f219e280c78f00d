package usecase

import (
	"context"
	"fmt"

	"github.com/avc-dev/links-service/internal/model"
	"go.uber.org/zap"
)

// ResolveLink возвращает запись ссылки для редиректа по slug
// Неактивные ссылки неотличимы от несуществующих. Для защищенных паролем
// ссылок требуется совпадение пароля с сохраненным хешем
func (u *LinkUsecase) ResolveLink(ctx context.Context, slug string, password string) (*model.Link, error) {
	link, err := u.repo.FindBySlug(ctx, model.Slug(slug))
	if err != nil {
		return nil, u.storeFailure("failed to resolve slug", err)
	}

	if link == nil || !link.IsActive {
		return nil, fmt.Errorf("slug %q: %w", slug, ErrLinkNotFound)
	}

	if link.IsProtected() && !u.hasher.Verify(link.PasswordHash, password) {
		u.logger.Debug("password check failed for protected link",
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("slug %q: %w", slug, ErrPasswordRequired)
	}

	return link, nil
}
