package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSlugGenerator_Generate проверяет длину и алфавит сгенерированных slug
func TestSlugGenerator_Generate(t *testing.T) {
	tests := []struct {
		name           string
		length         int
		expectedLength int
	}{
		{
			name:           "Default length",
			length:         0,
			expectedLength: DefaultSlugLength,
		},
		{
			name:           "Configured length 7",
			length:         7,
			expectedLength: 7,
		},
		{
			name:           "Configured length 10",
			length:         10,
			expectedLength: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			generator := NewSlugGenerator(tt.length)

			// Act
			slug := generator.Generate()

			// Assert
			require.Equal(t, tt.expectedLength, len(slug))

			// Проверяем что slug содержит только символы алфавита
			for _, char := range slug.String() {
				assert.True(t, strings.ContainsRune(slugAlphabet, char),
					"Slug contains invalid character: %c", char)
			}
		})
	}
}

// TestSlugGenerator_Generate_Varies проверяет, что генератор не выдает одно значение
func TestSlugGenerator_Generate_Varies(t *testing.T) {
	// Arrange
	generator := NewSlugGenerator(DefaultSlugLength)

	// Act
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[generator.Generate().String()] = true
	}

	// Assert - при 62^7 вариантах 1000 генераций практически не коллидируют
	assert.Greater(t, len(seen), 990, "Generator produced too many duplicates")
}

// TestSlugAlphabet проверяет состав алфавита: 26 строчных + 26 заглавных + 10 цифр
func TestSlugAlphabet(t *testing.T) {
	assert.Equal(t, 62, len(slugAlphabet))

	unique := make(map[rune]bool)
	for _, char := range slugAlphabet {
		unique[char] = true
	}
	assert.Equal(t, 62, len(unique), "Alphabet contains duplicate characters")
}
