package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLPrefix представляет базовый URL, от которого строятся короткие ссылки
type URLPrefix string

func (p URLPrefix) String() string {
	return string(p)
}

func (p *URLPrefix) Set(value string) error {
	if !strings.HasPrefix(value, "http") {
		return fmt.Errorf("invalid URL prefix format: %s", value)
	}

	*p = URLPrefix(strings.TrimSuffix(value, "/"))

	return nil
}

func (p *URLPrefix) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// JoinSlug строит полный короткий URL из базового префикса и slug
func (p URLPrefix) JoinSlug(slug string) (string, error) {
	joined, err := url.JoinPath(string(p), slug)
	if err != nil {
		return "", fmt.Errorf("failed to join base URL with slug: %w", err)
	}
	return joined, nil
}
