package app

import (
	"context"
	"fmt"

	"github.com/avc-dev/links-service/internal/config"
	"github.com/avc-dev/links-service/internal/config/db"
	"github.com/avc-dev/links-service/internal/handler"
	"github.com/avc-dev/links-service/internal/migrations"
	"github.com/avc-dev/links-service/internal/repository"
	"github.com/avc-dev/links-service/internal/service"
	"github.com/avc-dev/links-service/internal/store"
	"github.com/avc-dev/links-service/internal/usecase"
	"go.uber.org/zap"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*handler.Handler, db.Database, error) {
	storage, dbPool, err := initStorage(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)
	slugGen := service.NewSlugGenerator(cfg.SlugLength)
	hasher := service.NewPasswordHasher()
	linkUsecase := usecase.NewLinkUsecase(repo, slugGen, hasher, cfg, logger)
	h := handler.New(linkUsecase, logger)

	return h, dbPool, nil
}

// initStorage создает хранилище на основе конфигурации
// Приоритет: PostgreSQL при заданном DSN, иначе файловое хранилище,
// иначе in-memory
func initStorage(cfg *config.Config, logger *zap.Logger) (repository.Store, db.Database, error) {
	if cfg.DatabaseDSN != "" {
		dbConfig := db.NewConfig(cfg.DatabaseDSN)

		dbPool, err := dbConfig.Connect(context.Background())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		migrator := migrations.NewMigrator(dbPool.DB(), logger)
		if err := migrator.RunUp(); err != nil {
			dbPool.Close()
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		logger.Info("Using PostgreSQL storage")
		return store.NewDatabaseStore(dbPool), dbPool, nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil, nil
}
