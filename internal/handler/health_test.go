package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHealth проверяет liveness-пробу
func TestHealth(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	h.Health(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Links service is running!", resp.Message)
	assert.Nil(t, resp.Data)
}

// TestDBCheck_Success проверяет readiness-пробу с доступным хранилищем
func TestDBCheck_Success(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/db-check", nil)
	w := httptest.NewRecorder()
	h.DBCheck(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "Store connection is successful!", resp.Message)
}

// TestMe проверяет возврат идентификатора аутентифицированного пользователя
func TestMe(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = authed(req, "owner-42")

	w := httptest.NewRecorder()
	h.Me(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, "owner-42", resp.Data["user_id"])
}

// TestMe_Unauthorized проверяет запрос без аутентификации
func TestMe_Unauthorized(t *testing.T) {
	h, _ := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	w := httptest.NewRecorder()
	h.Me(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, decodeEnvelope(t, w).Success)
}
