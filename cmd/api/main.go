package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "breed-registry/internal/adapters/storage/postgres"
	"breed-registry/internal/config"
	"breed-registry/internal/platform/logger"
	"breed-registry/internal/router"

	"go.uber.org/zap"
)

// @title Breed Registry API
// @version 1.0
// @description Votación de razas: listar, votar (o crear) y borrar.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		db, err = pg.Open(ctx, pg.WithSSLMode(cfg.DatabaseURL, cfg.Local))
		if err != nil {
			zl.Fatal("database connection failed", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				zl.Warn("database close failed", zap.Error(err))
			}
		}()

		if cfg.EnsureSchema {
			if err := pg.EnsureSchema(ctx, db); err != nil {
				zl.Fatal("schema setup failed", zap.Error(err))
			}
		}
		zl.Info("using postgres storage", zap.Bool("ssl", !cfg.Local))
	} else {
		zl.Warn("DATABASE_URL not set, using in-memory storage")
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{DB: db, Logger: zl}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	if err := serve(ctx, srv, cfg.ShutdownTimeout, zl); err != nil {
		// p.ej. puerto ocupado: salir con código != 0 para el supervisor
		zl.Fatal("server error", zap.Error(err))
	}
}

// serve bloquea hasta que el server falla o ctx se cancela; en ese caso
// hace shutdown ordenado. Devuelve error solo si el server no pudo servir.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, zl *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		zl.Info("server is up and running", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zl.Info("shutting down", zap.Duration("timeout", shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}
	return nil
}
