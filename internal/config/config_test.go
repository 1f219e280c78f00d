package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetworkAddress_Set проверяет разбор адреса host:port
func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		expectErr bool
		host      string
		port      int
	}{
		{
			name:  "Valid address",
			value: "localhost:9090",
			host:  "localhost",
			port:  9090,
		},
		{
			name:  "Empty host",
			value: ":8080",
			host:  "",
			port:  8080,
		},
		{
			name:      "Missing port",
			value:     "localhost",
			expectErr: true,
		},
		{
			name:      "Non-numeric port",
			value:     "localhost:http",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetworkAddress
			err := addr.Set(tt.value)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.host, addr.Host)
			assert.Equal(t, tt.port, addr.Port)
			assert.Equal(t, tt.value, addr.String())
		})
	}
}

// TestURLPrefix_Set проверяет разбор базового URL
func TestURLPrefix_Set(t *testing.T) {
	var prefix URLPrefix

	require.NoError(t, prefix.Set("http://localhost:8080/"))
	assert.Equal(t, "http://localhost:8080", prefix.String(),
		"Trailing slash must be trimmed")

	assert.Error(t, prefix.Set("ftp://host"), "Only http(s) prefixes are accepted")
}

// TestURLPrefix_JoinSlug проверяет сборку полного короткого URL
func TestURLPrefix_JoinSlug(t *testing.T) {
	prefix := URLPrefix("http://localhost:8080")

	joined, err := prefix.JoinSlug("abc1234")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/abc1234", joined)
}

// TestNewDefaultConfig проверяет значения конфигурации по умолчанию
func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "localhost:8080", cfg.RunAddress.String())
	assert.Equal(t, URLPrefix("http://localhost:8080"), cfg.BaseURL)
	assert.Equal(t, 7, cfg.SlugLength)
	assert.Equal(t, 10, cfg.Retry.MaxAttempts)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.FileStoragePath)
}
