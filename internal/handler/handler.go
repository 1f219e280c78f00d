package handler

import (
	"context"
	"net/http"

	"github.com/avc-dev/links-service/internal/middleware"
	"github.com/avc-dev/links-service/internal/model"
	"github.com/avc-dev/links-service/internal/usecase"
	"go.uber.org/zap"
)

// LinkUsecase определяет интерфейс бизнес-логики, доступной HTTP слою
type LinkUsecase interface {
	CreateLink(ctx context.Context, params usecase.CreateLinkParams) (*usecase.CreateLinkResult, error)
	ResolveLink(ctx context.Context, slug string, password string) (*model.Link, error)
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы сервиса коротких ссылок
type Handler struct {
	usecase LinkUsecase
	logger  *zap.Logger
}

// New создает новый экземпляр Handler
func New(usecase LinkUsecase, logger *zap.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// ownerID извлекает идентификатор аутентифицированного пользователя из контекста
func ownerID(r *http.Request) (string, bool) {
	return middleware.GetUserIDFromContext(r.Context())
}
