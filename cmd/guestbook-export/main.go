package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joseph-ayodele/homepage/internal/common"
	"github.com/joseph-ayodele/homepage/internal/export"
	repo "github.com/joseph-ayodele/homepage/internal/repository"
)

func main() {
	var out string
	flag.StringVar(&out, "out", "guestbook.xlsx", "output workbook path")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Exports read the persistent store directly; the in-memory fallback belongs to a server process.
	store := repo.NewSQLEntryStore(repo.ConfigFromCommon(cfg.Database), logger)
	data, err := export.NewService(store, logger).ExportEntriesXLSX(ctx)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		logger.Error("failed to write workbook", "path", out, "error", err)
		os.Exit(1)
	}
	logger.Info("guestbook exported", "path", out, "bytes", len(data))
}
