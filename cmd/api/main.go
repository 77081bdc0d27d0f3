package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"idgate/internal/api"
	"idgate/internal/audit"
	"idgate/internal/config"
	"idgate/internal/storage"
	"idgate/internal/validator"
	"idgate/pkg/logger"
)

func main() {
	// 0. Load Configuration (Dev/Local)
	// Errors are masked because in production these files usually do not
	// exist and we rely on system env vars.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	cfg := config.Load()

	// 1. Setup Global Logger
	log := logger.Setup(cfg.Env)
	log.Info("application_startup", "env", cfg.Env)

	// 2. Setup Sentry
	sentryEnabled := false
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 1.0,
			Environment:      cfg.Env,
		})
		if err != nil {
			log.Error("sentry_init_failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
			sentryEnabled = true
			log.Info("sentry_initialized")
		}
	} else {
		log.Warn("sentry_dsn_missing", "details", "skipping_init")
	}

	// 3. Wire the existence-check collaborator.
	// With DATABASE_URL set we connect the real registry store. Without
	// it we wire the trap store: any check that reaches the lookup
	// panics, which the recovery middleware turns into a logged 500
	// instead of a silent wrong answer.
	ctx := context.Background()

	var pool *pgxpool.Pool
	var checker validator.ExistenceChecker

	if cfg.DatabaseURL != "" {
		var err error
		pool, err = storage.NewPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("database_connect_failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		log.Info("database_connected")

		checker = storage.NewIdentifierStore(pool)
	} else {
		log.Warn("database_url_missing", "details", "trap_store_wired")
		checker = storage.NewTrapStore()
	}

	// 4. Domain services
	v := validator.New(checker)
	auditLogger := audit.NewJSONAuditLogger()

	// 5. Setup HTTP Server
	server := api.NewServer(pool, v, auditLogger, api.Options{
		SentryEnabled:  sentryEnabled,
		RateLimitRPS:   rate.Limit(cfg.RateLimitRPS),
		RateLimitBurst: cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.Router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// 6. Start Server with Graceful Shutdown
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("server_listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// 7. Block for Shutdown Signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Error("server_startup_failed", "error", err)
		os.Exit(1)

	case sig := <-shutdown:
		log.Info("shutdown_signal_received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful_shutdown_failed", "error", err)
			if err := srv.Close(); err != nil {
				log.Error("server_force_close_failed", "error", err)
			}
		}

		if pool != nil {
			pool.Close()
			log.Info("database_pool_closed")
		}

		log.Info("server_shutdown_complete")
	}
}
