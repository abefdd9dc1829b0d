package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	httpAdapter "github.com/iho/pocketledger/internal/adapter/http"
	"github.com/iho/pocketledger/internal/adapter/http/handler"
	"github.com/iho/pocketledger/internal/adapter/http/middleware"
	"github.com/iho/pocketledger/internal/adapter/repository/csvfile"
	"github.com/iho/pocketledger/internal/domain"
	"github.com/iho/pocketledger/internal/infrastructure/config"
	"github.com/iho/pocketledger/internal/infrastructure/logger"
	"github.com/iho/pocketledger/internal/infrastructure/metrics"
	"github.com/iho/pocketledger/internal/usecase"
)

// limiterIdle is how long a client may stay quiet before its limiter is dropped.
const limiterIdle = 10 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log, prometheus.DefaultRegisterer); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// server bundles the HTTP server with the ledger it serves.
type server struct {
	http    *http.Server
	ledger  *usecase.LedgerUseCase
	limiter *middleware.RateLimiter
	cfg     *config.Config
	log     zerolog.Logger
}

func newServer(cfg *config.Config, log zerolog.Logger, reg prometheus.Registerer) (*server, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}

	// Initialize use case
	store := csvfile.NewStore(csvfile.NewULIDGenerator())
	ledger := usecase.NewLedgerUseCase(policy, store, log, metrics.New(reg))

	// Initialize handlers
	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	var metricsHandler http.Handler
	if gatherer, ok := reg.(prometheus.Gatherer); ok {
		metricsHandler = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		RecordHandler:  handler.NewRecordHandler(ledger),
		LedgerHandler:  handler.NewLedgerHandler(ledger, cfg.LedgerFile),
		HealthHandler:  handler.NewHealthHandler(),
		Logger:         log,
		RateLimiter:    limiter,
		MetricsHandler: metricsHandler,
	})

	return &server{
		http: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
			Handler:      router,
			ReadTimeout:  cfg.HTTPReadTimeout,
			WriteTimeout: cfg.HTTPWriteTimeout,
			IdleTimeout:  cfg.HTTPIdleTimeout,
		},
		ledger:  ledger,
		limiter: limiter,
		cfg:     cfg,
		log:     log,
	}, nil
}

// loadLedger restores the configured file. A missing file starts empty.
func (s *server) loadLedger(ctx context.Context) error {
	err := s.ledger.LoadFromFile(ctx, s.cfg.LedgerFile)
	if errors.Is(err, domain.ErrFileNotFound) {
		s.log.Info().Str("path", s.cfg.LedgerFile).Msg("ledger file not found, starting empty")
		return nil
	}
	return err
}

// shutdown drains the server and saves the ledger when configured to.
func (s *server) shutdown(ctx context.Context) error {
	var errs []error
	if err := s.http.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http: %w", err))
	}

	if s.cfg.SaveOnExit {
		if err := s.ledger.SaveToFile(ctx, s.cfg.LedgerFile); err != nil {
			errs = append(errs, fmt.Errorf("save ledger: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (s *server) sweepLimiter(ctx context.Context) {
	if s.limiter == nil {
		return
	}

	ticker := time.NewTicker(limiterIdle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			remaining := s.limiter.Sweep(limiterIdle)
			s.log.Debug().Int("clients", remaining).Msg("rate limiter swept")
		}
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger, reg prometheus.Registerer) error {
	srv, err := newServer(cfg, log, reg)
	if err != nil {
		return err
	}

	if err := srv.loadLedger(ctx); err != nil {
		return err
	}

	go srv.sweepLimiter(ctx)

	// Start server in goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("file", cfg.LedgerFile).Msg("starting server")
		if err := srv.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := srv.shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info().Msg("server stopped")
	return nil
}
