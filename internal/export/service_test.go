package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/homepage/internal/repository"
)

func TestExportEntriesXLSX(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	_, _ = store.Insert(ctx, "Alice", "hello")
	_, _ = store.Insert(ctx, "Bob", "a longer message")

	svc := NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	data, err := svc.ExportEntriesXLSX(ctx)
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != SheetName {
		t.Fatalf("expected single %q sheet, got %v", SheetName, sheets)
	}

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("get rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Sender" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][0] != "1" || rows[1][1] != "Alice" || rows[1][2] != "hello" {
		t.Errorf("unexpected first row %v", rows[1])
	}
	if rows[2][1] != "Bob" {
		t.Errorf("unexpected second row %v", rows[2])
	}
}

func TestExportEmpty(t *testing.T) {
	svc := NewService(repository.NewMemoryStore(), nil)
	data, err := svc.ExportEntriesXLSX(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, _ := f.GetRows(SheetName)
	if len(rows) != 1 {
		t.Errorf("expected header row only, got %d rows", len(rows))
	}
}
