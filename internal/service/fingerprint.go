package service

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/avc-dev/links-service/internal/model"
)

// Fingerprint возвращает SHA-256 отпечаток оригинального URL в hex-кодировке
// Хеш считается от буквальной строки запроса без нормализации: URL, совпадающие
// семантически, но различающиеся текстуально (завершающий слеш, порядок query
// параметров, регистр), дают разные отпечатки и не дедуплицируются
func Fingerprint(originalURL model.URL) string {
	sum := sha256.Sum256([]byte(originalURL))
	return hex.EncodeToString(sum[:])
}
