package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/avc-dev/links-service/internal/model"
)

var (
	// ErrNotFound возвращается, когда запись с запрошенным ключом отсутствует
	ErrNotFound = errors.New("link not found")

	// ErrAlreadyExists возвращается атомарной вставкой, когда slug уже занят
	// Это сигнал гонки на уровне хранилища: проверка существования перед вставкой -
	// только оптимизация, финальный арбитр уникальности - сама вставка
	ErrAlreadyExists = errors.New("slug already exists")
)

// Store представляет in-memory хранилище ссылок
// Используется в тестах и в dev-режиме без настроенной базы данных
type Store struct {
	mutex sync.Mutex
	links map[model.Slug]model.Link

	// firstByHash запоминает первый slug для каждого отпечатка URL:
	// поиск по отпечатку должен возвращать самую раннюю запись
	firstByHash map[string]model.Slug
}

// NewStore создает пустое in-memory хранилище
func NewStore() *Store {
	return &Store{
		links:       make(map[model.Slug]model.Link),
		firstByHash: make(map[string]model.Slug),
	}
}

// FindBySlug возвращает ссылку по slug
func (s *Store) FindBySlug(_ context.Context, slug model.Slug) (*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[slug]
	if !ok {
		return nil, fmt.Errorf("slug %s: %w", slug, ErrNotFound)
	}

	return &link, nil
}

// FindByFingerprint возвращает первую ссылку с данным отпечатком URL
// Отпечаток не является ключом уникальности
func (s *Store) FindByFingerprint(_ context.Context, hash string) (*model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	slug, ok := s.firstByHash[hash]
	if !ok {
		return nil, fmt.Errorf("fingerprint %s: %w", hash, ErrNotFound)
	}

	link := s.links[slug]
	return &link, nil
}

// Insert атомарно сохраняет ссылку
// Возвращает ErrAlreadyExists если slug уже занят
func (s *Store) Insert(_ context.Context, link *model.Link) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.links[link.Slug]; exists {
		return fmt.Errorf("slug %s: %w", link.Slug, ErrAlreadyExists)
	}

	s.links[link.Slug] = *link

	if _, exists := s.firstByHash[link.OriginalURLHash]; !exists {
		s.firstByHash[link.OriginalURLHash] = link.Slug
	}

	return nil
}

// remove откатывает ранее вставленную запись вместе с ее индексом отпечатка
// Вызывающая сторона обязана исключить конкурентные вставки с тем же
// отпечатком между Insert и remove, иначе индекс потеряет чужую запись
func (s *Store) remove(slug model.Slug) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[slug]
	if !ok {
		return
	}

	delete(s.links, slug)
	if s.firstByHash[link.OriginalURLHash] == slug {
		delete(s.firstByHash, link.OriginalURLHash)
	}
}

// Ping проверяет доступность хранилища
// Для in-memory хранилища всегда успешен
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// Len возвращает количество записей в хранилище
func (s *Store) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return len(s.links)
}
