package model

import "time"

// Slug представляет короткий идентификатор ссылки
type Slug string

func (s Slug) String() string {
	return string(s)
}

// URL представляет оригинальный (длинный) URL
type URL string

func (u URL) String() string {
	return string(u)
}

// Link представляет запись короткой ссылки в хранилище
// Запись создается один раз оркестратором создания и далее неизменяема:
// инкремент кликов и деактивация зарезервированы для будущих операций
type Link struct {
	Slug            Slug       `json:"slug" db:"slug"`
	OriginalURL     URL        `json:"original_url" db:"original_url"`
	OriginalURLHash string     `json:"-" db:"original_url_hash"`
	OwnerID         string     `json:"owner_id" db:"owner_id"`
	PasswordHash    string     `json:"-" db:"password_hash"`
	IsActive        bool       `json:"is_active" db:"is_active"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty" db:"expires_at"`
	ClickCount      int64      `json:"click_count" db:"click_count"`
	Notes           string     `json:"notes,omitempty" db:"notes"`
}

// IsProtected сообщает, защищена ли ссылка паролем
func (l *Link) IsProtected() bool {
	return l.PasswordHash != ""
}
