package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/dreamwell/internal"
	api "github.com/yourname/dreamwell/internal/api"
	"github.com/yourname/dreamwell/internal/config"
	"github.com/yourname/dreamwell/internal/questionnaire"
	"github.com/yourname/dreamwell/internal/storage"
)

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	questions, err := questionnaire.Load()
	if err != nil {
		logger.Fatalf("failed to load questionnaire: %v", err)
	}

	kv, err := storage.NewKeyValue(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}
	defer kv.Close()

	store := storage.NewAssessmentStore(kv, logger)
	history := store.Load(ctx)
	logger.Infof("loaded %d assessments from %s storage", len(history), cfg.StorageBackend)

	app := api.NewApp(logger, store, questions, cfg.StrictValidation)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(app, cfg.CORSOrigins),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Infof("Server running on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
}
