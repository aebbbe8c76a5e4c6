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

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/rhekacitra/InsideOR-Project/configs"
	"github.com/rhekacitra/InsideOR-Project/internal/database"
	"github.com/rhekacitra/InsideOR-Project/internal/handlers"
	"github.com/rhekacitra/InsideOR-Project/internal/services"
)

func newServeCommand(getConfig func() *configs.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the dataset and serve REST, websocket and gRPC APIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), getConfig())
		},
	}
}

func runServe(ctx context.Context, cfg *configs.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	slog.Info("InsideOR explorer starting",
		"source", cfg.Data.Source,
		"http_port", cfg.App.Port,
		"grpc_port", cfg.App.GRPCPort,
	)

	// 1. Источник данных и первичная загрузка
	source, db, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	explorer := services.NewExplorerService(source)
	if err := explorer.Reload(ctx); err != nil {
		return err
	}

	// 2. Сессии просмотра
	hub := handlers.NewFrameHub()
	sessions := handlers.NewSessionManager(explorer, hub, handlers.PlaybackSettings{
		Tick: cfg.Playback.Tick,
		Step: cfg.Playback.Step,
	})

	// 3. gRPC сервер потока кадров
	grpcServer := grpc.NewServer()
	handlers.RegisterFrameStreamServer(grpcServer, handlers.NewFrameStreamServer(sessions))

	lis, err := net.Listen("tcp", ":"+cfg.App.GRPCPort)
	if err != nil {
		return fmt.Errorf("ошибка gRPC listener: %w", err)
	}
	errCh := make(chan error, 2)
	go func() {
		slog.Info("gRPC frame stream listening", "port", cfg.App.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("ошибка gRPC сервера: %w", err)
		}
	}()

	// 4. REST API
	var health func() error
	if db != nil {
		health = func() error { return database.HealthCheck(db) }
	}
	restAPI := handlers.NewRESTAPIServer(explorer, sessions, handlers.NewChartRenderer(), health)
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           restAPI.SetupRoutes(cfg.App.GinMode),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("REST API listening", "port", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("ошибка HTTP сервера: %w", err)
		}
	}()

	// 5. SIGHUP перечитывает набор данных, SIGINT/SIGTERM останавливают сервис
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	var runErr error
loop:
	for {
		select {
		case sig := <-sigChan:
			if sig == syscall.SIGHUP {
				if err := explorer.Reload(ctx); err != nil {
					slog.Error("Dataset reload failed", "error", err)
					continue
				}
				sessions.Rebind()
				continue
			}
			break loop
		case runErr = <-errCh:
			break loop
		case <-ctx.Done():
			break loop
		}
	}

	slog.Info("Graceful shutdown...")

	sessions.CloseAll()
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP server shutdown failed", "error", err)
	}

	slog.Info("Service stopped")
	return runErr
}
