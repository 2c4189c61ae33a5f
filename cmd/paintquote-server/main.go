package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/brushworks/paintquote/internal/config"
	"github.com/brushworks/paintquote/internal/server/handlers"
	"github.com/brushworks/paintquote/internal/server/router"
	"github.com/brushworks/paintquote/internal/store"
	"github.com/brushworks/paintquote/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	db, err := store.Open(cfg.Catalog.DBPath)
	if err != nil {
		baseLogger.Fatal("failed to open catalog database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			baseLogger.Error("failed to close catalog database", zap.Error(err))
		}
	}()

	if err := store.Migrate(db); err != nil {
		baseLogger.Fatal("failed to migrate catalog database", zap.Error(err))
	}

	catalogStore := store.NewCatalogStore(db, baseLogger.Named("store.catalog"))
	estimateHandler := handlers.NewEstimateHandler(catalogStore, cfg.Catalog.DealerID, baseLogger.Named("handlers.estimate"))
	engine := router.New(estimateHandler, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
