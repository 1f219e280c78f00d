package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher хеширует пароли ссылок через bcrypt
// Пароль в открытом виде никогда не сохраняется и не логируется
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher создает хешер со стоимостью bcrypt по умолчанию
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{cost: bcrypt.DefaultCost}
}

// Hash возвращает одностороннее хеш-представление пароля
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify проверяет пароль против сохраненного хеша
func (h *PasswordHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
