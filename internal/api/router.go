package api

import (
	"log/slog"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/time/rate"

	customMiddleware "idgate/internal/api/middleware"
	"idgate/internal/audit"
	"idgate/internal/validator"
)

type Server struct {
	Router *chi.Mux
	Pool   *pgxpool.Pool
	Logger *slog.Logger
}

// Options carries the router knobs that vary per environment.
type Options struct {
	SentryEnabled  bool
	RateLimitRPS   rate.Limit
	RateLimitBurst int
}

func NewServer(pool *pgxpool.Pool, v *validator.Validator, auditLogger audit.AuditLogger, opts Options) *Server {
	r := chi.NewRouter()

	// 1. Core Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	// 2. Sentry Middleware (Must be before Panic Recovery to capture panics)
	if opts.SentryEnabled {
		sentryHandler := sentryhttp.New(sentryhttp.Options{
			Repanic: true,
		})
		r.Use(sentryHandler.Handle)
	}

	// 3. Logger & Recovery
	r.Use(customMiddleware.RequestLogger)
	r.Use(customMiddleware.PanicRecovery)

	// 4. Rate limiting
	limiter := customMiddleware.NewIPRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst)
	r.Use(limiter.Middleware)

	srv := &Server{
		Router: r,
		Pool:   pool,
		Logger: slog.Default(),
	}

	// Handlers
	identifierHandler := NewIdentifierHandler(v, auditLogger)

	// Base Routes
	r.Get("/health", srv.HealthHandler())

	// API Group
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/identifiers/{id}", identifierHandler.Check)
	})

	return srv
}
