package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/avc-dev/links-service/internal/service"
	"go.uber.org/zap"
)

// UserIDKey is the key type used to store user ID in context
type UserIDKey string

const (
	// UserIDContextKey is the context key for user ID
	UserIDContextKey UserIDKey = "user_id"

	bearerPrefix = "Bearer "
)

// AuthMiddleware представляет миддлвар аутентификации по bearer-токену
// Выпуск токенов - забота внешнего сервиса; здесь токен только проверяется
// и owner_id из него кладется в контекст запроса
type AuthMiddleware struct {
	authService *service.AuthService
	logger      *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(authService *service.AuthService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// RequireAuth возвращает миддлвар, который требует валидный bearer-токен
// Запросы без токена или с невалидным токеном отклоняются с 401
func (am *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			am.logger.Debug("missing bearer credential",
				zap.String("uri", r.RequestURI),
			)
			writeUnauthorized(w)
			return
		}

		userID, err := am.authService.ValidateToken(token)
		if err != nil {
			am.logger.Debug("invalid bearer credential",
				zap.String("uri", r.RequestURI),
				zap.Error(err),
			)
			writeUnauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}

	token := strings.TrimPrefix(header, bearerPrefix)
	if token == "" {
		return "", false
	}

	return token, true
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success":false,"message":"Authentication is required."}`))
}

// GetUserIDFromContext извлекает user_id из контекста запроса
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDContextKey).(string)
	return userID, ok
}
