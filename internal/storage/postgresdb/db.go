package postgresdb

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v4/stdlib" // register pgx driver
	"github.com/jmoiron/sqlx"

	"github.com/Alexandr-Snisarenko/subnet-failban/internal/config"
)

// DSN собирает строку подключения. Если в конфиге задан dsn, остальные поля игнорируются.
func DSN(cfg *config.Database) (string, error) {
	if cfg.Postgresql.Dsn != "" {
		return cfg.Postgresql.Dsn, nil
	}
	if cfg.Postgresql.Host == "" || cfg.Postgresql.Name == "" {
		return "", ErrEmptyDSN
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s", cfg.Postgresql.User, cfg.Postgresql.Password,
		cfg.Postgresql.Host, cfg.Postgresql.Port, cfg.Postgresql.Name), nil
}

// OpenDB открывает подключение и проверяет его пингом.
func OpenDB(cfg *config.Database) (*sqlx.DB, error) {
	dsn, err := DSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// NewDB открывает подключение и настраивает пул соединений.
// Одно подключение делят между собой репозитории подсетей и записей failban.
func NewDB(cfg *config.Database) (*sqlx.DB, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Postgresql.Pool.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgresql.Pool.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgresql.Pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Postgresql.Pool.ConnMaxIdleTime)

	return db, nil
}
