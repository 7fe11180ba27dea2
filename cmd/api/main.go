package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/jaekwang-park/taskboard/internal/config"
	taskhttp "github.com/jaekwang-park/taskboard/internal/http"
	"github.com/jaekwang-park/taskboard/internal/repository"
	"github.com/jaekwang-park/taskboard/internal/service"
)

func main() {
	// Initial logger at info level; reconfigured after config load
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(context.Background()); err != nil {
		logger.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Optional .env for local development; real environments set vars directly
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.ParseLogLevel(),
	}))
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"env", cfg.AppEnv,
		"port", cfg.ServerPort,
		"store_driver", cfg.StoreDriver,
		"log_level", cfg.LogLevel,
	)

	// Store connection - explicit lifecycle, injected into the service
	var taskRepo repository.TaskRepository
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := repository.NewMongo(ctx, cfg.Mongo.URI)
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error("failed to disconnect mongodb", "error", err)
			}
		}()
		taskRepo = repository.NewMongoTask(client.Database(cfg.Mongo.Database))
		logger.Info("mongodb connected", "database", cfg.Mongo.Database)
	case config.StorePostgres:
		db, err := repository.NewDB(cfg.DB.DSN())
		if err != nil {
			return err
		}
		defer db.Close()
		taskRepo = repository.NewPostgresTask(db)
		logger.Info("database connected")
	default:
		return fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	// Service
	taskSvc := service.NewTaskService(taskRepo)

	// HTTP Server - mounts both the resource and the graphql façade
	srv, err := taskhttp.NewServer(cfg.ServerPort, cfg.CORSOrigin, logger, taskSvc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	logger.Info("server starting", "port", cfg.ServerPort)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
