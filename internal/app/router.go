package app

import (
	"github.com/avc-dev/links-service/internal/handler"
	"github.com/avc-dev/links-service/internal/middleware"
	"github.com/avc-dev/links-service/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(h *handler.Handler, authService *service.AuthService, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.GzipMiddleware(logger))

	authMiddleware := middleware.NewAuthMiddleware(authService, logger)

	// Пробы
	r.Get("/health", h.Health)
	r.Get("/db-check", h.DBCheck)

	// Переход по короткой ссылке
	r.Get("/{slug}", h.Redirect)

	// API - требует аутентифицированного вызывающего
	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		r.Post("/links", h.CreateLink)
		r.Get("/users/me", h.Me)
	})

	return r
}
