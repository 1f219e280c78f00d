package service

import (
	"math/rand"

	"github.com/avc-dev/links-service/internal/model"
)

const (
	// DefaultSlugLength - длина slug по умолчанию
	DefaultSlugLength = 7

	// slugAlphabet - 62-символьный алфавит: строчные, заглавные буквы и цифры
	slugAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// SlugGenerator генерирует случайные slug фиксированной длины
// Каждый символ выбирается равномерно и независимо; защита от коллизий
// не встроена - уникальность обеспечивает вызывающая сторона через хранилище
type SlugGenerator struct {
	length int
}

// NewSlugGenerator создает генератор slug заданной длины
func NewSlugGenerator(length int) *SlugGenerator {
	if length <= 0 {
		length = DefaultSlugLength
	}

	return &SlugGenerator{length: length}
}

// Generate возвращает случайный slug
func (g *SlugGenerator) Generate() model.Slug {
	result := make([]byte, g.length)

	for i := range result {
		result[i] = slugAlphabet[rand.Intn(len(slugAlphabet))]
	}

	return model.Slug(result)
}
