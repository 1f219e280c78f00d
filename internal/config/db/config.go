package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // Регистрируем pgx драйвер для database/sql
)

// Config содержит настройки подключения к базе данных
type Config struct {
	DSN               string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// NewConfig создает конфигурацию подключения к БД с разумными значениями пула
func NewConfig(dsn string) *Config {
	return &Config{
		DSN:               dsn,
		MaxConns:          10,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   time.Minute * 30,
		HealthCheckPeriod: time.Minute,
	}
}

// Connect открывает пул подключений к PostgreSQL
// Соединение открывается один раз при старте процесса и закрывается при остановке;
// дескриптор передается в хранилище через конструктор, а не через глобальную переменную
func (c *Config) Connect(ctx context.Context) (Database, error) {
	if c.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	// sql.DB с pgx драйвером нужен для миграций
	sqlDB, err := sql.Open("pgx", c.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open sql database: %w", err)
	}

	sqlDB.SetMaxOpenConns(int(c.MaxConns))
	sqlDB.SetMaxIdleConns(int(c.MinConns))
	sqlDB.SetConnMaxLifetime(c.MaxConnLifetime)
	sqlDB.SetConnMaxIdleTime(c.MaxConnIdleTime)

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	poolConfig, err := pgxpool.ParseConfig(c.DSN)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = c.MaxConns
	poolConfig.MinConns = c.MinConns
	poolConfig.MaxConnLifetime = c.MaxConnLifetime
	poolConfig.MaxConnIdleTime = c.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = c.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewDBAdapter(pool, sqlDB), nil
}

// Database интерфейс для работы с базой данных
type Database interface {
	Ping(ctx context.Context) error
	Close()
	// DB возвращает *sql.DB для миграций
	DB() *sql.DB
}

// DBAdapter адаптирует pgxpool.Pool к интерфейсу Database
type DBAdapter struct {
	Pool  *pgxpool.Pool
	SQLDB *sql.DB
}

// NewDBAdapter создает новый адаптер
func NewDBAdapter(pool *pgxpool.Pool, sqlDB *sql.DB) *DBAdapter {
	return &DBAdapter{
		Pool:  pool,
		SQLDB: sqlDB,
	}
}

// Ping проверяет подключение
func (d *DBAdapter) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

// Close закрывает соединения
func (d *DBAdapter) Close() {
	d.Pool.Close()
	if d.SQLDB != nil {
		d.SQLDB.Close()
	}
}

// DB возвращает *sql.DB
func (d *DBAdapter) DB() *sql.DB {
	return d.SQLDB
}
