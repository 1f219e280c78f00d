package usecase

import (
	"context"

	"github.com/avc-dev/links-service/internal/config"
	"github.com/avc-dev/links-service/internal/model"
	"go.uber.org/zap"
)

// LinkRepository определяет интерфейс для работы с хранилищем ссылок
type LinkRepository interface {
	FindBySlug(ctx context.Context, slug model.Slug) (*model.Link, error)
	FindByFingerprint(ctx context.Context, hash string) (*model.Link, error)
	Insert(ctx context.Context, link *model.Link) error
	Ping(ctx context.Context) error
}

// SlugGenerator определяет интерфейс генератора случайных slug
type SlugGenerator interface {
	Generate() model.Slug
}

// PasswordHasher определяет интерфейс одностороннего хеширования паролей
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// LinkUsecase содержит бизнес-логику создания и разрешения коротких ссылок
type LinkUsecase struct {
	repo    LinkRepository
	slugGen SlugGenerator
	hasher  PasswordHasher
	cfg     *config.Config
	logger  *zap.Logger
}

// NewLinkUsecase создает новый экземпляр LinkUsecase
func NewLinkUsecase(repo LinkRepository, slugGen SlugGenerator, hasher PasswordHasher, cfg *config.Config, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:    repo,
		slugGen: slugGen,
		hasher:  hasher,
		cfg:     cfg,
		logger:  logger,
	}
}

// Ping проверяет доступность хранилища
func (u *LinkUsecase) Ping(ctx context.Context) error {
	return u.repo.Ping(ctx)
}
