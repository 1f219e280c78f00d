package usecase

import "errors"

var (
	ErrEmptyURL           = errors.New("empty URL")
	ErrInvalidURL         = errors.New("invalid URL")
	ErrSlugTaken          = errors.New("slug is already taken")
	ErrLinkNotFound       = errors.New("link not found")
	ErrPasswordRequired   = errors.New("password required")
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrMaxRetriesExceeded возвращается, когда не удалось сгенерировать
	// свободный slug за допустимое число попыток
	ErrMaxRetriesExceeded = errors.New("max retries exceeded for slug generation")
)
