package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// RetryConfig содержит настройки повторных попыток генерации slug
type RetryConfig struct {
	MaxAttempts int `env:"SLUG_MAX_ATTEMPTS" envDefault:"10"`
}

// Config содержит конфигурацию приложения
// Значения читаются из переменных окружения, флаги командной строки имеют приоритет
type Config struct {
	RunAddress      NetworkAddress `env:"RUN_ADDRESS"`
	BaseURL         URLPrefix      `env:"BASE_URL"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	JWTSecret       string         `env:"JWT_SECRET" envDefault:"insecure-dev-secret"`
	SlugLength      int            `env:"SLUG_LENGTH" envDefault:"7"`
	Retry           RetryConfig
}

// NewDefaultConfig создает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		RunAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:    URLPrefix("http://localhost:8080"),
		JWTSecret:  "insecure-dev-secret",
		SlugLength: 7,
		Retry:      RetryConfig{MaxAttempts: 10},
	}
}

// Load читает конфигурацию из окружения и флагов командной строки
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	fs := flag.NewFlagSet("links-service", flag.ContinueOnError)
	fs.Var(&cfg.RunAddress, "a", "address to run HTTP server")
	fs.Var(&cfg.BaseURL, "b", "base URL for shortened links")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "file storage path")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if cfg.SlugLength < 3 || cfg.SlugLength > 50 {
		return nil, fmt.Errorf("invalid slug length: %d", cfg.SlugLength)
	}

	return cfg, nil
}
