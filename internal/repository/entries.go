package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/joseph-ayodele/homepage/constants"
	"github.com/joseph-ayodele/homepage/internal/common"
	"github.com/joseph-ayodele/homepage/internal/entity"
)

// EntryStore persists guestbook entries.
type EntryStore interface {
	Insert(ctx context.Context, senderName, message string) (*entity.Entry, error)
	ListAll(ctx context.Context) ([]*entity.Entry, error)
	Delete(ctx context.Context, id int64) error
}

var schemaDDL = map[string]string{
	dialect.SQLite: `CREATE TABLE IF NOT EXISTS messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sender_name TEXT NOT NULL,
	message TEXT NOT NULL
)`,
	dialect.Postgres: `CREATE TABLE IF NOT EXISTS messages (
	id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
	sender_name TEXT NOT NULL,
	message TEXT NOT NULL
)`,
}

// SQLEntryStore keeps no connection between calls: each operation opens the
// store, runs a single statement and closes it before returning.
type SQLEntryStore struct {
	cfg    Config
	logger *slog.Logger
}

func NewSQLEntryStore(cfg Config, logger *slog.Logger) *SQLEntryStore {
	return &SQLEntryStore{
		cfg:    cfg,
		logger: logger,
	}
}

// Initialize creates the messages table if it does not exist.
func (r *SQLEntryStore) Initialize(ctx context.Context) error {
	drv, err := Open(ctx, r.cfg, r.logger)
	if err != nil {
		return common.StorageUnavailableError("open entries store", err)
	}
	defer Close(drv, r.logger)

	if err := drv.Exec(ctx, schemaDDL[r.cfg.Dialect()], []any{}, nil); err != nil {
		return common.StorageUnavailableError("create messages table", err)
	}
	r.logger.Info("entries store initialized", "dialect", r.cfg.Dialect())
	return nil
}

func (r *SQLEntryStore) Insert(ctx context.Context, senderName, message string) (*entity.Entry, error) {
	drv, err := Open(ctx, r.cfg, r.logger)
	if err != nil {
		return nil, common.StorageError("open entries store", err)
	}
	defer Close(drv, r.logger)

	query, args := entsql.Dialect(drv.Dialect()).
		Insert(constants.MessagesTable).
		Columns("sender_name", "message").
		Values(senderName, message).
		Returning("id").
		Query()

	var rows entsql.Rows
	if err := drv.Query(ctx, query, args, &rows); err != nil {
		r.logger.Error("failed to insert entry", "sender_name", senderName, "error", err)
		return nil, common.StorageError("insert entry", err)
	}
	defer rows.Close()

	e := &entity.Entry{SenderName: senderName, Message: message}
	if !rows.Next() {
		err := rows.Err()
		if err == nil {
			err = sql.ErrNoRows
		}
		return nil, common.StorageError("read inserted id", err)
	}
	if err := rows.Scan(&e.ID); err != nil {
		return nil, common.StorageError("scan inserted id", err)
	}
	return e, nil
}

func (r *SQLEntryStore) ListAll(ctx context.Context) ([]*entity.Entry, error) {
	drv, err := Open(ctx, r.cfg, r.logger)
	if err != nil {
		return nil, common.StorageError("open entries store", err)
	}
	defer Close(drv, r.logger)

	b := entsql.Dialect(drv.Dialect())
	query, args := b.Select("id", "sender_name", "message").
		From(b.Table(constants.MessagesTable)).
		OrderBy("id").
		Query()

	var rows entsql.Rows
	if err := drv.Query(ctx, query, args, &rows); err != nil {
		r.logger.Error("failed to list entries", "error", err)
		return nil, common.StorageError("list entries", err)
	}
	defer rows.Close()

	entries := make([]*entity.Entry, 0)
	for rows.Next() {
		var e entity.Entry
		if err := rows.Scan(&e.ID, &e.SenderName, &e.Message); err != nil {
			return nil, common.StorageError("scan entry", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, common.StorageError("iterate entries", err)
	}
	return entries, nil
}

// Delete removes the entry with id; deleting an absent id is not an error.
func (r *SQLEntryStore) Delete(ctx context.Context, id int64) error {
	drv, err := Open(ctx, r.cfg, r.logger)
	if err != nil {
		return common.StorageError("open entries store", err)
	}
	defer Close(drv, r.logger)

	query, args := entsql.Dialect(drv.Dialect()).
		Delete(constants.MessagesTable).
		Where(entsql.EQ("id", id)).
		Query()

	var res sql.Result
	if err := drv.Exec(ctx, query, args, &res); err != nil {
		r.logger.Error("failed to delete entry", "entry_id", id, "error", err)
		return common.StorageError("delete entry", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		r.logger.Debug("delete matched no entry", "entry_id", id)
	}
	return nil
}

// Count returns the number of stored entries.
func (r *SQLEntryStore) Count(ctx context.Context) (int, error) {
	drv, err := Open(ctx, r.cfg, r.logger)
	if err != nil {
		return 0, common.StorageError("open entries store", err)
	}
	defer Close(drv, r.logger)

	b := entsql.Dialect(drv.Dialect())
	query, args := b.Select(entsql.Count("*")).
		From(b.Table(constants.MessagesTable)).
		Query()

	var rows entsql.Rows
	if err := drv.Query(ctx, query, args, &rows); err != nil {
		return 0, common.StorageError("count entries", err)
	}
	defer rows.Close()

	count, err := entsql.ScanInt(rows)
	if err != nil {
		return 0, common.StorageError("scan entry count", err)
	}
	return count, nil
}
