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

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/deploydrop/internal/adapter/driven/notifyfile"
	"github.com/ericfisherdev/deploydrop/internal/adapter/driven/secret"
	sqliteadapter "github.com/ericfisherdev/deploydrop/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/deploydrop/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/deploydrop/internal/adapter/driving/web"
	"github.com/ericfisherdev/deploydrop/internal/application"
	"github.com/ericfisherdev/deploydrop/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on malformed values).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cfg.HasSecretKey() {
		return errors.New("DEPLOYDROP_SECRET_KEY is required to store submitted credentials")
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"notification_path", cfg.NotificationPath,
		"csrf", cfg.CSRFEnabled,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations on writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	if version, err := sqliteadapter.SchemaVersion(db.Writer); err == nil {
		slog.Info("migrations complete", "schema_version", version)
	} else {
		return err
	}

	// 5. Wire adapters.
	submissionStore := sqliteadapter.NewSubmissionRepo(db)
	notificationSource := notifyfile.New(cfg.NotificationPath)
	sealer, err := secret.NewAESGCMSealer(cfg.SecretKey)
	if err != nil {
		return err
	}

	// 6. Create services.
	submissionSvc := application.NewSubmissionService(submissionStore, sealer)
	notificationSvc := application.NewNotificationService(notificationSource)

	if n, err := submissionSvc.Count(ctx); err == nil {
		slog.Info("submission store ready", "submissions", n)
	}

	// 7. Register API and GUI routes.
	mux := http.NewServeMux()
	apiHandler := httphandler.NewHandler(notificationSvc, submissionSvc, slog.Default())
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	webHandler := webhandler.NewHandler(submissionSvc, notificationSvc, cfg.CSRFEnabled, slog.Default())
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	// 8. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 9. Graceful shutdown with 10s timeout to drain in-flight requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
