package app

import (
	"github.com/avc-dev/links-service/internal/config"
	"github.com/avc-dev/links-service/internal/config/db"
	"github.com/avc-dev/links-service/internal/handler"
	"github.com/avc-dev/links-service/internal/service"
	"go.uber.org/zap"
)

// App представляет приложение сервиса коротких ссылок
type App struct {
	config      *config.Config
	logger      *zap.Logger
	handler     *handler.Handler
	authService *service.AuthService
	dbPool      db.Database
}

// New создает новый экземпляр приложения
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	h, dbPool, err := initDependencies(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:      cfg,
		logger:      logger,
		handler:     h,
		authService: service.NewAuthService(cfg.JWTSecret),
		dbPool:      dbPool,
	}, nil
}

// Close освобождает ресурсы приложения
// Пул подключений к хранилищу живет весь срок процесса и закрывается здесь
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
	}
}

// Run запускает приложение
func Run() error {
	app, err := New()
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start()
}
