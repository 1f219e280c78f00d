package handler

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/avc-dev/links-service/internal/model"
	"github.com/avc-dev/links-service/internal/usecase"
	"go.uber.org/zap"
)

// slugPattern задает допустимую форму пользовательского slug: 3-50 символов
// из букв, цифр, подчеркивания и дефиса
var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,50}$`)

const (
	passwordMinLength = 4
	passwordMaxLength = 64
)

// CreateLinkRequest представляет тело запроса POST /api/links
type CreateLinkRequest struct {
	OriginalURL string `json:"original_url"`
	Slug        string `json:"slug,omitempty"`
	Password    string `json:"password,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// validate проверяет форму запроса до передачи в бизнес-логику
// Возвращает сообщение для клиента при нарушении ограничений
func (r *CreateLinkRequest) validate() (string, bool) {
	if r.Slug != "" && !slugPattern.MatchString(r.Slug) {
		return "Slug must be 3-50 characters of letters, digits, underscore or hyphen.", false
	}

	if r.Password != "" && (len(r.Password) < passwordMinLength || len(r.Password) > passwordMaxLength) {
		return "Password must be 4-64 characters long.", false
	}

	return "", true
}

// CreateLink обрабатывает POST запрос создания короткой ссылки
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	owner, ok := ownerID(req)
	if !ok {
		h.respond(w, http.StatusUnauthorized, model.APIResponse{
			Success: false,
			Message: "Authentication is required.",
		})
		return
	}

	var request CreateLinkRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.respond(w, http.StatusBadRequest, model.APIResponse{
			Success: false,
			Message: "Request body must be valid JSON.",
		})
		return
	}

	if msg, ok := request.validate(); !ok {
		h.respond(w, http.StatusBadRequest, model.APIResponse{
			Success: false,
			Message: msg,
		})
		return
	}

	// Ссылка активна по умолчанию, если клиент не указал иное
	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	result, err := h.usecase.CreateLink(req.Context(), usecase.CreateLinkParams{
		OriginalURL: request.OriginalURL,
		Slug:        request.Slug,
		Password:    request.Password,
		IsActive:    isActive,
		Notes:       request.Notes,
		OwnerID:     owner,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}

	status := http.StatusCreated
	message := "Link created successfully."
	if !result.Created {
		status = http.StatusOK
		message = "Link already exists."
	}

	h.respond(w, status, model.APIResponse{
		Success: true,
		Message: message,
		Data: map[string]any{
			"slug":         result.Slug.String(),
			"short_url":    result.ShortURL,
			"original_url": result.OriginalURL.String(),
		},
	})
}
