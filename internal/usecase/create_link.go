package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avc-dev/links-service/internal/model"
	"github.com/avc-dev/links-service/internal/service"
	"github.com/avc-dev/links-service/internal/store"
	"go.uber.org/zap"
)

// CreateLinkParams содержит входные данные операции создания ссылки
// OwnerID приходит от внешнего сервиса аутентификации и принимается на доверии
type CreateLinkParams struct {
	OriginalURL string
	Slug        string
	Password    string
	IsActive    bool
	Notes       string
	OwnerID     string
}

// CreateLinkResult содержит результат создания ссылки
// Created=false означает, что запись с таким URL уже существовала
// и была переиспользована вместо создания новой
type CreateLinkResult struct {
	Slug        model.Slug
	ShortURL    string
	OriginalURL model.URL
	Created     bool
}

// CreateLink - основная бизнес-логика создания короткой ссылки
//
// Порядок шагов: валидация URL, разрешение slug (пользовательский или
// сгенерированный), отпечаток URL, дедупликация по отпечатку, хеширование
// пароля, атомарная вставка. Предварительная проверка занятости slug - только
// оптимизация: финальный арбитр уникальности - атомарная вставка хранилища,
// поэтому последовательность проверка-вставка безопасна под конкуренцией
func (u *LinkUsecase) CreateLink(ctx context.Context, params CreateLinkParams) (*CreateLinkResult, error) {
	originalURL, err := normalizeURL(params.OriginalURL)
	if err != nil {
		return nil, err
	}

	customSlug := params.Slug != ""

	var slug model.Slug
	if customSlug {
		slug = model.Slug(params.Slug)

		existing, err := u.repo.FindBySlug(ctx, slug)
		if err != nil {
			return nil, u.storeFailure("failed to check custom slug", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("slug %q: %w", params.Slug, ErrSlugTaken)
		}
	} else {
		slug, err = u.generateFreeSlug(ctx)
		if err != nil {
			return nil, err
		}
	}

	fingerprint := service.Fingerprint(originalURL)

	// Дедупликация: тот же URL уже сокращали - возвращаем существующую запись,
	// новая не создается. Повторная отправка URL другим владельцем переиспользует
	// ссылку первого владельца; это осознанный размен экономии хранилища
	// на пер-владельческую идентичность ссылок
	duplicate, err := u.repo.FindByFingerprint(ctx, fingerprint)
	if err != nil {
		return nil, u.storeFailure("failed to check URL fingerprint", err)
	}
	if duplicate != nil {
		u.logger.Info("reusing existing link for duplicate URL",
			zap.String("slug", duplicate.Slug.String()),
			zap.String("owner_id", params.OwnerID),
		)
		return u.buildResult(duplicate.Slug, duplicate.OriginalURL, false)
	}

	var passwordHash string
	if params.Password != "" {
		passwordHash, err = u.hasher.Hash(params.Password)
		if err != nil {
			return nil, u.storeFailure("failed to hash password", err)
		}
	}

	link := &model.Link{
		Slug:            slug,
		OriginalURL:     originalURL,
		OriginalURLHash: fingerprint,
		OwnerID:         params.OwnerID,
		PasswordHash:    passwordHash,
		IsActive:        params.IsActive,
		CreatedAt:       time.Now().UTC(),
		ClickCount:      0,
		Notes:           params.Notes,
	}

	if err := u.insertWithRetry(ctx, link, customSlug); err != nil {
		return nil, err
	}

	u.logger.Info("link created",
		zap.String("slug", link.Slug.String()),
		zap.String("owner_id", link.OwnerID),
		zap.Bool("protected", link.IsProtected()),
	)

	return u.buildResult(link.Slug, link.OriginalURL, true)
}

// buildResult собирает результат операции с полным коротким URL
func (u *LinkUsecase) buildResult(slug model.Slug, originalURL model.URL, created bool) (*CreateLinkResult, error) {
	shortURL, err := u.cfg.BaseURL.JoinSlug(slug.String())
	if err != nil {
		return nil, u.storeFailure("failed to build short URL", err)
	}

	return &CreateLinkResult{
		Slug:        slug,
		ShortURL:    shortURL,
		OriginalURL: originalURL,
		Created:     created,
	}, nil
}

// insertWithRetry вставляет запись, разрешая гонку на slug
// Конфликт вставки для сгенерированного slug - внутренний сигнал повтора:
// генерируем новый slug и пробуем снова. Для пользовательского slug
// конфликт поднимается наружу как ErrSlugTaken
func (u *LinkUsecase) insertWithRetry(ctx context.Context, link *model.Link, customSlug bool) error {
	for attempt := 0; attempt < u.cfg.Retry.MaxAttempts; attempt++ {
		err := u.repo.Insert(ctx, link)
		if err == nil {
			return nil
		}

		if !errors.Is(err, store.ErrAlreadyExists) {
			return u.storeFailure("failed to insert link", err)
		}

		if customSlug {
			return fmt.Errorf("slug %q: %w", link.Slug, ErrSlugTaken)
		}

		u.logger.Debug("generated slug lost insert race, retrying",
			zap.String("slug", link.Slug.String()),
			zap.Int("attempt", attempt+1),
		)
		link.Slug = u.slugGen.Generate()
	}

	return fmt.Errorf("%w: %w", ErrServiceUnavailable, ErrMaxRetriesExceeded)
}

// generateFreeSlug генерирует slug, не занятый в хранилище
// Проверка занятости - оптимизация перед вставкой, а не механизм корректности;
// при 62^7 вариантах цикл практически всегда завершается с первой попытки
func (u *LinkUsecase) generateFreeSlug(ctx context.Context) (model.Slug, error) {
	for attempt := 0; attempt < u.cfg.Retry.MaxAttempts; attempt++ {
		slug := u.slugGen.Generate()

		existing, err := u.repo.FindBySlug(ctx, slug)
		if err != nil {
			return "", u.storeFailure("failed to check generated slug", err)
		}
		if existing == nil {
			return slug, nil
		}
	}

	return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, ErrMaxRetriesExceeded)
}

// storeFailure логирует ошибку хранилища и оборачивает ее в generic сбой
// Детали внутренней ошибки наружу не выходят
func (u *LinkUsecase) storeFailure(msg string, err error) error {
	u.logger.Error(msg, zap.Error(err))
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, err)
}

// normalizeURL проверяет форму оригинального URL
// Требуется синтаксически корректный абсолютный URL со схемой и хостом.
// Кроме обрезки краевых пробелов строка не меняется: отпечаток и
// сохраненный URL считаются от нее как есть
func normalizeURL(raw string) (model.URL, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return "", ErrEmptyURL
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	return model.URL(raw), nil
}
