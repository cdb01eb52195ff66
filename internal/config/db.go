package config

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/legislate-ai/core-service/internal/logger"
)

const dbPingTimeout = 3 * time.Second

// NewDB opens a pgx-backed pool and verifies connectivity before the
// caller starts serving. With debug on, the connected identity is
// logged once (never the DSN itself).
func NewDB(dsn string, debug bool) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("config: empty database address")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if debug {
		var who, name string
		_ = db.QueryRowContext(ctx, "SELECT current_user, current_database()").Scan(&who, &name)
		logger.Logger.Debug().Str("user", who).Str("database", name).Msg("database connected")
	}

	return db, nil
}
