package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newskeep/internal/config"
	pgRepo "newskeep/internal/infra/adapter/persistence/postgres"
	"newskeep/internal/infra/db"
	"newskeep/internal/infra/newsapi"
	"newskeep/internal/observability/logging"
	"newskeep/internal/observability/tracing"
	"newskeep/internal/resilience/circuitbreaker"
	authservice "newskeep/internal/service/auth"

	accountUC "newskeep/internal/usecase/account"
	articleUC "newskeep/internal/usecase/article"
	newsUC "newskeep/internal/usecase/news"

	hhttp "newskeep/internal/handler/http"
	haccount "newskeep/internal/handler/http/account"
	harticle "newskeep/internal/handler/http/article"
	hauth "newskeep/internal/handler/http/auth"
	hnews "newskeep/internal/handler/http/news"
	"newskeep/internal/handler/http/middleware"
	"newskeep/internal/handler/http/requestid"
)

func main() {
	logger := logging.NewLogger()
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	shutdownTracing := tracing.Init("newskeep")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	database := initDatabase(logger, cfg)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	handler := setupServer(logger, database, cfg)

	runServer(logger, handler, cfg)
}

// initDatabase opens the connection pool and runs pending migrations.
// Startup fails hard here: a server without its store is useless.
func initDatabase(logger *slog.Logger, cfg *config.Config) *sql.DB {
	database, err := db.Open(cfg.DatabaseURL, db.ConnectionConfigFromEnv())
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}

	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("database ready")
	return database
}

// setupServer wires repositories, services and handlers into the root
// handler. Repositories see the database through the circuit breaker;
// health probes ping the raw pool so they keep reporting while the
// breaker is open.
func setupServer(logger *slog.Logger, database *sql.DB, cfg *config.Config) http.Handler {
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	users := pgRepo.NewUserRepo(breaker)
	articles := pgRepo.NewArticleRepo(breaker)

	hasher := authservice.NewHasher(0)
	tokens := authservice.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	accountSvc := &accountUC.Service{
		Users:    users,
		Articles: articles,
		Hasher:   hasher,
		Tokens:   tokens,
	}
	articleSvc := &articleUC.Service{Articles: articles}

	providerCfg, err := newsapi.LoadConfig()
	if err != nil {
		logger.Error("invalid news provider configuration", slog.Any("error", err))
		os.Exit(1)
	}
	newsSvc := &newsUC.Service{Provider: newsapi.NewClient(providerCfg)}

	authMW := &hauth.Middleware{Tokens: tokens, Users: users}

	mux := http.NewServeMux()
	haccount.Register(mux, accountSvc, authMW)
	harticle.Register(mux, articleSvc, authMW)
	hnews.Register(mux, newsSvc)

	mux.Handle("GET /health", &hhttp.HealthHandler{
		DB:      database,
		Breaker: breaker,
		Version: cfg.Version,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	if cfg.Production() {
		// GET only: unmatched writes must not be answered with index.html
		mux.Handle("GET /", hhttp.StaticHandler(cfg.StaticDir))
		logger.Info("serving static assets", slog.String("dir", cfg.StaticDir))
	}

	return applyMiddleware(logger, mux, cfg)
}

// applyMiddleware builds the global middleware chain, innermost first:
// metrics, body and input limits, logging, recovery, tracing, request
// ID, CORS.
func applyMiddleware(logger *slog.Logger, handler http.Handler, cfg *config.Config) http.Handler {
	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(middleware.DefaultCORSConfig())(chain)
	return chain
}

// runServer starts the HTTP server and blocks until SIGINT/SIGTERM,
// then drains in-flight requests within the configured timeout.
func runServer(logger *slog.Logger, handler http.Handler, cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("version", cfg.Version),
			slog.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
