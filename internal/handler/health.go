package handler

import (
	"net/http"

	"github.com/avc-dev/links-service/internal/model"
	"go.uber.org/zap"
)

// Health обрабатывает liveness-пробу
func (h *Handler) Health(w http.ResponseWriter, req *http.Request) {
	h.respond(w, http.StatusOK, model.APIResponse{
		Success: true,
		Message: "Links service is running!",
	})
}

// DBCheck обрабатывает readiness-пробу с проверкой хранилища
// Неформальная проба: в сообщение может попасть текст ошибки хранилища
func (h *Handler) DBCheck(w http.ResponseWriter, req *http.Request) {
	if err := h.usecase.Ping(req.Context()); err != nil {
		h.logger.Error("store ping failed", zap.Error(err))
		h.respond(w, http.StatusInternalServerError, model.APIResponse{
			Success: false,
			Message: "Store connection failed: " + err.Error(),
		})
		return
	}

	h.respond(w, http.StatusOK, model.APIResponse{
		Success: true,
		Message: "Store connection is successful!",
	})
}
