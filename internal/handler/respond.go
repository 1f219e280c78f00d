package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avc-dev/links-service/internal/model"
	"github.com/avc-dev/links-service/internal/usecase"
	"go.uber.org/zap"
)

// respond сериализует единый конверт ответа APIResponse
func (h *Handler) respond(w http.ResponseWriter, status int, resp model.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// respondError транслирует доменную ошибку в конверт APIResponse
// Наружу уходит только человекочитаемое сообщение; внутренние детали
// (текст ошибки хранилища, обертки) остаются в логах
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "Service is temporarily unavailable."

	switch {
	case errors.Is(err, usecase.ErrEmptyURL):
		status = http.StatusBadRequest
		message = "Original URL is required."
	case errors.Is(err, usecase.ErrInvalidURL):
		status = http.StatusBadRequest
		message = "Original URL is not a valid absolute URL."
	case errors.Is(err, usecase.ErrSlugTaken):
		status = http.StatusConflict
		message = "Slug is already taken."
	case errors.Is(err, usecase.ErrLinkNotFound):
		status = http.StatusNotFound
		message = "Link not found."
	case errors.Is(err, usecase.ErrPasswordRequired):
		status = http.StatusUnauthorized
		message = "Valid password is required for this link."
	default:
		h.logger.Error("unexpected error", zap.Error(err))
	}

	h.respond(w, status, model.APIResponse{
		Success: false,
		Message: message,
	})
}
