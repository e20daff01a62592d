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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pammu-27/sparsha-backend/internal/app"
	"github.com/pammu-27/sparsha-backend/internal/config"
	"github.com/pammu-27/sparsha-backend/internal/database"
	"github.com/pammu-27/sparsha-backend/internal/domain/inquiry"
	"github.com/pammu-27/sparsha-backend/internal/domain/media"
	"github.com/pammu-27/sparsha-backend/internal/domain/testimonial"
	"github.com/pammu-27/sparsha-backend/internal/logging"
	"github.com/pammu-27/sparsha-backend/internal/middleware"
	"github.com/pammu-27/sparsha-backend/internal/storage"
	"github.com/pammu-27/sparsha-backend/internal/storage/local"
	"github.com/pammu-27/sparsha-backend/internal/storage/s3store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.New(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, &media.Media{}, &testimonial.Testimonial{}, &inquiry.Inquiry{}); err != nil {
		return err
	}

	store, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics()
	}

	router := app.NewRouter(app.Deps{Config: cfg, DB: db, Store: store, Metrics: metrics})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening",
			"addr", srv.Addr,
			"storage", store.Kind(),
			"admin_gate", cfg.AdminEnabled(),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}

func newStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case config.StorageS3:
		return s3store.New(ctx, s3store.Options{
			Endpoint:        cfg.S3Endpoint,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			PublicBaseURL:   cfg.S3PublicBaseURL,
			UsePathStyle:    cfg.S3UsePathStyle,
		})
	default:
		return local.New(cfg.UploadDir, cfg.UploadURLPrefix)
	}
}
