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
	_ "time/tzdata"

	httpadapter "adpaas/internal/adapter/http"
	"adpaas/internal/adapter/postgres"
	"adpaas/internal/adapter/usecase"
	"adpaas/internal/config"
	"adpaas/internal/core/document"
	"adpaas/internal/db"
	"adpaas/internal/telemetry"
)

// main is the entry point of the adpaas service. It loads configuration,
// optionally runs database migrations and seeds demo data, wires the
// repository, authorizer, PDF renderer and use case, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTel)
	if err != nil {
		logger.Error("tracing setup error", slog.Any("error", err))
		return
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Error("tracing shutdown error", slog.Any("error", err))
		}
	}()

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	repo := postgres.NewRequestRepository(pool)
	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, repo); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded", slog.String("org_id", db.DemoOrgID.String()))
	}

	loc, err := cfg.Doc.Location()
	if err != nil {
		logger.Error("invalid document timezone", slog.String("timezone", cfg.Doc.Timezone), slog.Any("error", err))
		return
	}
	renderer, err := document.NewRenderer(document.Options{
		Location:    loc,
		RegularFont: cfg.Doc.FontRegular,
		BoldFont:    cfg.Doc.FontBold,
	})
	if err != nil {
		logger.Error("pdf renderer error", slog.Any("error", err))
		return
	}

	svc := usecase.NewRequestUseCase(repo, postgres.NewAuthorizer(pool), renderer, usecase.WithLocation(loc))
	handler := httpadapter.NewHandler(svc, httpadapter.NewVerifier(cfg.Auth), logger, httpadapter.WithDebug(cfg.Debug))
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return
	case <-ctx.Done():
		exitCode = 0
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
