package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/joseph-ayodele/homepage/internal/common"
)

// sqliteDriverName is the database/sql name registered by modernc.org/sqlite.
const sqliteDriverName = "sqlite"

type Config struct {
	// DSN is a SQLite file path or a postgres:// URL.
	DSN         string
	DialTimeout time.Duration
}

// ConfigFromCommon picks the postgres URL when set, otherwise the SQLite path.
func ConfigFromCommon(c common.DatabaseConfig) Config {
	dsn := c.Path
	if c.URL != "" {
		dsn = c.URL
	}
	return Config{DSN: dsn, DialTimeout: c.DialTimeout}
}

// Dialect returns the ent dialect the DSN selects.
func (c Config) Dialect() string {
	lower := strings.ToLower(c.DSN)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return dialect.Postgres
	}
	return dialect.SQLite
}

// Open creates a single-connection *sql.DB for the configured engine, wraps it for Ent
// and pings it so an unreachable store fails here rather than on the first statement.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*entsql.Driver, error) {
	logger.Debug("connecting to database", "dialect", cfg.Dialect())

	var (
		db  *sql.DB
		err error
	)
	switch cfg.Dialect() {
	case dialect.Postgres:
		var pc *pgx.ConnConfig
		pc, err = pgx.ParseConfig(cfg.DSN)
		if err != nil {
			logger.Error("failed to parse database url", "error", err)
			return nil, err
		}
		pc.RuntimeParams["application_name"] = "homepage"
		db = stdlib.OpenDB(*pc)
	default:
		db, err = sql.Open(sqliteDriverName, cfg.DSN)
		if err != nil {
			logger.Error("failed to open database", "path", cfg.DSN, "error", err)
			return nil, err
		}
	}
	db.SetMaxOpenConns(1)

	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Dialect(), err)
	}

	return entsql.OpenDB(cfg.Dialect(), db), nil
}

// Close closes the database connection, logging instead of returning failures.
func Close(drv *entsql.Driver, logger *slog.Logger) {
	if drv == nil {
		return
	}
	if err := drv.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
	}
}

// HealthCheck opens the store, runs a trivial query and closes it again.
func HealthCheck(ctx context.Context, cfg Config, logger *slog.Logger) error {
	logger.Debug("pinging database")
	drv, err := Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer Close(drv, logger)

	var rows entsql.Rows
	if err := drv.Query(ctx, "SELECT 1", []any{}, &rows); err != nil {
		return err
	}
	defer rows.Close()
	logger.Debug("database ping successful")
	return rows.Err()
}
