package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"entgo.io/ent/dialect"

	"github.com/joseph-ayodele/homepage/internal/common"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) (*SQLEntryStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "messages.db")
	s := NewSQLEntryStore(Config{DSN: path, DialTimeout: time.Second}, discardLogger())
	if err := s.Initialize(context.Background()); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return s, path
}

func TestSQLEntryStoreInsertListDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	a, err := s.Insert(ctx, "Alice", "hello")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	b, err := s.Insert(ctx, "Bob", "hi there")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if a.ID == b.ID {
		t.Fatalf("expected unique ids, both were %d", a.ID)
	}

	entries, err := s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != a.ID || entries[0].SenderName != "Alice" || entries[0].Message != "hello" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}

	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	entries, err = s.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != b.ID {
		t.Fatalf("expected only Bob's entry to remain, got %+v", entries)
	}

	n, err := s.Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Errorf("expected count 1, got %d", n)
	}
}

func TestSQLEntryStoreDeleteMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	if _, err := s.Insert(ctx, "Alice", "hello"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := s.Delete(ctx, 9999); err != nil {
		t.Fatalf("deleting an absent id should succeed, got %v", err)
	}
	entries, _ := s.ListAll(ctx)
	if len(entries) != 1 {
		t.Errorf("expected entry to survive, got %d entries", len(entries))
	}
}

func TestSQLEntryStoreIDsStableAfterDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	first, _ := s.Insert(ctx, "a", "1")
	if err := s.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	second, err := s.Insert(ctx, "b", "2")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("autoincrement must not reuse id %d", first.ID)
	}
}

func TestSQLEntryStoreInitializeUnavailable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "messages.db")
	s := NewSQLEntryStore(Config{DSN: path}, discardLogger())

	err := s.Initialize(context.Background())
	if !errors.Is(err, common.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestSQLEntryStoreOperationError(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t)

	// A fresh file without the messages table makes every statement fail.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove db: %v", err)
	}

	if _, err := s.ListAll(ctx); !errors.Is(err, common.ErrStorage) {
		t.Errorf("expected ErrStorage from list, got %v", err)
	}
	if _, err := s.Insert(ctx, "a", "b"); !errors.Is(err, common.ErrStorage) {
		t.Errorf("expected ErrStorage from insert, got %v", err)
	}
	if err := s.Delete(ctx, 1); !errors.Is(err, common.ErrStorage) {
		t.Errorf("expected ErrStorage from delete, got %v", err)
	}
}

func TestConfigDialect(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"messages.db", dialect.SQLite},
		{"/var/lib/homepage/messages.db", dialect.SQLite},
		{"postgres://u:p@localhost:5432/db", dialect.Postgres},
		{"POSTGRESQL://localhost/db", dialect.Postgres},
	}
	for _, tt := range tests {
		if got := (Config{DSN: tt.dsn}).Dialect(); got != tt.want {
			t.Errorf("Dialect(%q) = %q, want %q", tt.dsn, got, tt.want)
		}
	}
}

func TestConfigFromCommonPrefersURL(t *testing.T) {
	cfg := ConfigFromCommon(common.DatabaseConfig{Path: "messages.db", URL: "postgres://localhost/db"})
	if cfg.DSN != "postgres://localhost/db" {
		t.Errorf("expected URL to win, got %q", cfg.DSN)
	}
	cfg = ConfigFromCommon(common.DatabaseConfig{Path: "messages.db"})
	if cfg.DSN != "messages.db" {
		t.Errorf("expected path, got %q", cfg.DSN)
	}
}

func TestHealthCheck(t *testing.T) {
	_, path := newTestStore(t)
	if err := HealthCheck(context.Background(), Config{DSN: path}, discardLogger()); err != nil {
		t.Fatalf("health check: %v", err)
	}
}
