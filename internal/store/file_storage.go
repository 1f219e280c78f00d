package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// LinkEntry представляет запись ссылки в файле хранения
type LinkEntry struct {
	UUID            string     `json:"uuid"`
	Slug            string     `json:"slug"`
	OriginalURL     string     `json:"original_url"`
	OriginalURLHash string     `json:"original_url_hash"`
	OwnerID         string     `json:"owner_id"`
	PasswordHash    string     `json:"password_hash,omitempty"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	ClickCount      int64      `json:"click_count"`
	Notes           string     `json:"notes,omitempty"`
}

// FileStorage управляет персистентным хранилищем ссылок в файле
// Записи хранятся в формате JSON Lines: одна запись - одна строка,
// новые записи дописываются в конец файла
type FileStorage struct {
	filePath string
}

// NewFileStorage создаёт новый FileStorage
func NewFileStorage(filePath string) *FileStorage {
	return &FileStorage{
		filePath: filePath,
	}
}

// Load загружает все записи из файла
func (fs *FileStorage) Load() ([]LinkEntry, error) {
	if _, err := os.Stat(fs.filePath); os.IsNotExist(err) {
		return []LinkEntry{}, nil
	}

	file, err := os.Open(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var entries []LinkEntry

	decoder := json.NewDecoder(file)
	for decoder.More() {
		var entry LinkEntry
		if err := decoder.Decode(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Append дописывает одну запись в конец файла
func (fs *FileStorage) Append(entry LinkEntry) error {
	file, err := os.OpenFile(fs.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open file for append: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(entry); err != nil {
		return fmt.Errorf("failed to encode entry: %w", err)
	}

	return nil
}
