package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"github.com/joseph-ayodele/homepage/internal/common"
	"github.com/joseph-ayodele/homepage/internal/guestbook"
	"github.com/joseph-ayodele/homepage/internal/profiles"
	"github.com/joseph-ayodele/homepage/internal/render"
	repo "github.com/joseph-ayodele/homepage/internal/repository"
	svc "github.com/joseph-ayodele/homepage/internal/server"
)

func main() {
	cfg := common.LoadConfig()

	level := slog.LevelInfo
	if cfg.Development() {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Development(),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	health := svc.NewHealth()
	dbConfig := repo.ConfigFromCommon(cfg.Database)
	store := repo.OpenEntryStore(ctx, dbConfig, logger, repo.WithStatusHook(health.StorageStatusChanged))
	logger.Info("guestbook storage ready", "mode", store.Mode(), "dialect", dbConfig.Dialect())

	profile := profiles.DefaultProfile()
	if cfg.Profile.SeedFile != "" {
		seeded, err := profiles.LoadSeed(cfg.Profile.SeedFile, profile)
		if err != nil {
			logger.Error("ignoring profile seed file", "path", cfg.Profile.SeedFile, "error", err)
		} else {
			profile = seeded
			logger.Info("profile seeded", "path", cfg.Profile.SeedFile)
		}
	}

	renderer, err := render.New()
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	server := svc.New(
		guestbook.NewService(store, logger),
		profiles.NewService(profile, logger),
		renderer,
		svc.NewSessionStore(cfg.Server.SecretKey, !cfg.Development()),
		store,
		logger,
	)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var grpcServer *grpc.Server
	if cfg.Server.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
		if err != nil {
			logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
			os.Exit(1)
		}
		grpcServer = svc.NewGRPCServer(health)
		logger.Info("grpc health listening", "addr", cfg.Server.GRPCAddr)
		go func() {
			if err := grpcServer.Serve(lis); err != nil {
				logger.Error("gRPC serve error", "error", err)
			}
		}()
	}

	logger.Info("homepage listening", "addr", httpServer.Addr, "env", cfg.Env)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	health.Shutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
}
