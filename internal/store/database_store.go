package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc-dev/links-service/internal/config/db"
	"github.com/avc-dev/links-service/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation - SQLSTATE код нарушения ограничения уникальности
const pgUniqueViolation = "23505"

// DatabaseStore реализует хранилище ссылок поверх PostgreSQL
// Уникальность slug обеспечивается ограничением UNIQUE на колонке slug:
// конкурентные вставки с одинаковым slug разрешаются базой, а не процессом
type DatabaseStore struct {
	pool *pgxpool.Pool
}

// NewDatabaseStore создает новый DatabaseStore
func NewDatabaseStore(database db.Database) *DatabaseStore {
	adapter, ok := database.(*db.DBAdapter)
	if !ok {
		panic("DatabaseStore requires DBAdapter")
	}

	return &DatabaseStore{
		pool: adapter.Pool,
	}
}

const linkColumns = `
	slug,
	original_url,
	original_url_hash,
	owner_id,
	COALESCE(password_hash, ''),
	is_active,
	created_at,
	expires_at,
	click_count,
	COALESCE(notes, '')
`

func scanLink(row pgx.Row) (*model.Link, error) {
	var link model.Link
	err := row.Scan(
		&link.Slug,
		&link.OriginalURL,
		&link.OriginalURLHash,
		&link.OwnerID,
		&link.PasswordHash,
		&link.IsActive,
		&link.CreatedAt,
		&link.ExpiresAt,
		&link.ClickCount,
		&link.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// FindBySlug возвращает ссылку по slug
func (ds *DatabaseStore) FindBySlug(ctx context.Context, slug model.Slug) (*model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE slug = $1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, string(slug)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("slug %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read link by slug: %w", err)
	}

	return link, nil
}

// FindByFingerprint возвращает первую (самую раннюю) ссылку с данным отпечатком URL
func (ds *DatabaseStore) FindByFingerprint(ctx context.Context, hash string) (*model.Link, error) {
	query := `SELECT ` + linkColumns + ` FROM links WHERE original_url_hash = $1 ORDER BY created_at LIMIT 1`

	link, err := scanLink(ds.pool.QueryRow(ctx, query, hash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("fingerprint %s: %w", hash, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read link by fingerprint: %w", err)
	}

	return link, nil
}

// Insert атомарно вставляет ссылку
// Нарушение уникальности slug транслируется в ErrAlreadyExists
func (ds *DatabaseStore) Insert(ctx context.Context, link *model.Link) error {
	query := `
		INSERT INTO links (slug, original_url, original_url_hash, owner_id, password_hash, is_active, created_at, expires_at, click_count, notes)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, NULLIF($10, ''))
	`

	_, err := ds.pool.Exec(ctx, query,
		string(link.Slug),
		string(link.OriginalURL),
		link.OriginalURLHash,
		link.OwnerID,
		link.PasswordHash,
		link.IsActive,
		link.CreatedAt,
		link.ExpiresAt,
		link.ClickCount,
		link.Notes,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("slug %s: %w", link.Slug, ErrAlreadyExists)
		}
		return fmt.Errorf("failed to insert link: %w", err)
	}

	return nil
}

// Ping проверяет доступность базы данных
func (ds *DatabaseStore) Ping(ctx context.Context) error {
	return ds.pool.Ping(ctx)
}
