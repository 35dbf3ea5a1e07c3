package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qualitydesk/qualitydesk/internal/app"
	"github.com/qualitydesk/qualitydesk/internal/catalog"
	"github.com/qualitydesk/qualitydesk/internal/datastore"
	"github.com/qualitydesk/qualitydesk/internal/dmt"
	"github.com/qualitydesk/qualitydesk/internal/entity"
	"github.com/qualitydesk/qualitydesk/internal/observability"
	"github.com/qualitydesk/qualitydesk/internal/view"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	store, err := app.OpenStore(ctx, cfg)
	if err != nil {
		logger.Error("open datastore", slog.String("driver", cfg.DatastoreDriver), slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close datastore", slog.Any("error", err))
		}
	}()

	metrics := observability.NewMetrics()
	store = datastore.Instrument(store, metrics)

	templates, err := view.NewEngine()
	if err != nil {
		logger.Error("parse templates", slog.Any("error", err))
		os.Exit(1)
	}

	entityService := entity.NewService(catalog.MustDefault(), store)
	entityHandler := entity.NewHandler(logger, entityService, templates)

	dmtService := dmt.NewService(store, dmt.DefaultLookups)
	dmtHandler := dmt.NewHandler(logger, dmtService, templates)

	router := app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		Templates:     templates,
		Store:         store,
		EntityHandler: entityHandler,
		DMTHandler:    dmtHandler,
		Metrics:       metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("datastore", cfg.DatastoreDriver))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
