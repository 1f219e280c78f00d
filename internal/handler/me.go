package handler

import (
	"net/http"

	"github.com/avc-dev/links-service/internal/model"
)

// Me возвращает идентификатор аутентифицированного пользователя
// Простой проброс результата внешнего сервиса аутентификации
func (h *Handler) Me(w http.ResponseWriter, req *http.Request) {
	owner, ok := ownerID(req)
	if !ok {
		h.respond(w, http.StatusUnauthorized, model.APIResponse{
			Success: false,
			Message: "Authentication is required.",
		})
		return
	}

	h.respond(w, http.StatusOK, model.APIResponse{
		Success: true,
		Message: "Authenticated user resolved.",
		Data: map[string]any{
			"user_id": owner,
		},
	})
}
