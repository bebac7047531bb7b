package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kemasghani/beReactNative/internal/api"
	"github.com/kemasghani/beReactNative/internal/cache"
	"github.com/kemasghani/beReactNative/internal/database"
	"github.com/kemasghani/beReactNative/internal/repository"
	"github.com/kemasghani/beReactNative/internal/upload"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := database.LoadConfig()
	log := setupLogger(cfg.Env)

	pool, err := database.Connect(cfg)
	if err != nil {
		log.Error("failed to create database pool", slog.Any("err", err))
		os.Exit(1)
	}
	defer pool.Close()

	// The database being down at boot is not fatal. The pool connects
	// lazily, so the service keeps answering and each storage-backed
	// request fails on its own until the database comes back.
	if err := database.Ping(pool); err != nil {
		log.Error("database unreachable, continuing degraded", slog.Any("err", err))
	} else if err := database.Migrate(pool, log); err != nil {
		log.Error("migrations failed", slog.Any("err", err))
		os.Exit(1)
	}

	receiver, err := upload.NewReceiver(cfg.UploadDir)
	if err != nil {
		log.Error("failed to prepare upload dir", slog.Any("err", err))
		os.Exit(1)
	}

	var reports repository.ReportRepository = repository.NewReportRepository(pool)

	rdb, err := cache.ConnectRedis(cfg)
	if err != nil {
		log.Warn("redis unavailable, serving reports without cache", slog.Any("err", err))
	} else {
		reports = cache.NewCachedReportRepository(reports, rdb, log)
	}

	router := api.NewRouter(api.Deps{
		Users:     repository.NewUserRepository(pool),
		Items:     repository.NewItemRepository(pool),
		Suppliers: repository.NewSupplierRepository(pool),
		Reports:   reports,
		Receiver:  receiver,
		Log:       log,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		log.Info("http server started", slog.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", slog.Any("err", err))
	}

	log.Info("server gracefully stopped")
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case envDev:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}
}
