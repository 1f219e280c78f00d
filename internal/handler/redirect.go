package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Redirect обрабатывает GET запрос перехода по короткой ссылке
// Для защищенных ссылок пароль передается query-параметром password
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	slug := chi.URLParam(req, "slug")
	password := req.URL.Query().Get("password")

	link, err := h.usecase.ResolveLink(req.Context(), slug, password)
	if err != nil {
		h.respondError(w, err)
		return
	}

	http.Redirect(w, req, link.OriginalURL.String(), http.StatusTemporaryRedirect)
}
