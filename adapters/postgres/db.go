package postgres

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"laborlens/internal/config"
	"laborlens/internal/errors"
)

// Connect opens a pooled connection and verifies it
func Connect(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	if cfg.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", cfg.URL)
	if err != nil {
		return nil, errors.DatabaseError("failed to connect to database", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := db.Ping(); err != nil {
		return nil, errors.DatabaseError("failed to ping database", err)
	}

	return db, nil
}
