package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/homepage/internal/repository"
)

// SheetName is the worksheet holding exported entries.
const SheetName = "Guestbook"

// Service produces XLSX bytes for guestbook exports.
type Service struct {
	store  repository.EntryStore
	logger *slog.Logger
}

func NewService(store repository.EntryStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// ExportEntriesXLSX returns a workbook with one row per guestbook entry.
func (s *Service) ExportEntriesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// Rename the default sheet so the workbook has exactly one.
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	headers := []string{"ID", "Sender", "Message"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(SheetName, cell, h)
	}

	for i, e := range entries {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(SheetName, cell, v)
		}
		write(1, e.ID)
		write(2, e.SenderName)
		write(3, e.Message)
	}

	_ = f.SetColWidth(SheetName, "A", "A", 8)
	_ = f.SetColWidth(SheetName, "B", "B", 24)
	_ = f.SetColWidth(SheetName, "C", "C", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
