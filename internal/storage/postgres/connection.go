package postgres

import (
	"database/sql"
	"fmt"

	"github.com/rallypoint-app/rallypoint-backend/config"
	_ "github.com/lib/pq"
)

// NewConnection opens the shared connection pool. The pool is created once at
// process start, handed to every repository, and closed at shutdown.
func NewConnection(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn := DSN(cfg)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	return db, nil
}
