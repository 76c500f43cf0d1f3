// Command skillstub runs the demo scenario against the simulated
// backend and optionally serves Prometheus metrics while doing so.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/skillstub/skillstub/internal/adapters/repository"
	"github.com/skillstub/skillstub/internal/adapters/stub"
	service "github.com/skillstub/skillstub/internal/app"
	"github.com/skillstub/skillstub/internal/config"
	"github.com/skillstub/skillstub/internal/demo"
	"github.com/skillstub/skillstub/pkg/logger"
	"github.com/skillstub/skillstub/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	slot, closeSlot, err := newSlot(ctx, cfg)
	if err != nil {
		log.Error(ctx, "failed to open storage backend", logger.Error(err))
		os.Exit(1)
	}
	defer closeSlot()

	store, err := repository.NewSkillStore(slot, repository.WithLogger(log))
	if err != nil {
		log.Error(ctx, "failed to build skill store", logger.Error(err))
		os.Exit(1)
	}
	svc, err := service.New(store, service.WithLogger(log))
	if err != nil {
		log.Error(ctx, "failed to build service", logger.Error(err))
		os.Exit(1)
	}
	transport, err := stub.NewTransport(svc,
		stub.WithPrefix(cfg.APIPrefix),
		stub.WithLatencyRange(
			time.Duration(cfg.LatencyMinMS)*time.Millisecond,
			time.Duration(cfg.LatencyMaxMS)*time.Millisecond,
		),
		stub.WithLogger(log),
	)
	if err != nil {
		log.Error(ctx, "failed to build stub transport", logger.Error(err))
		os.Exit(1)
	}

	log.Info(ctx, "stub ready",
		logger.String("prefix", cfg.APIPrefix),
		logger.String("backend", cfg.Backend),
		logger.Int("latency_min_ms", cfg.LatencyMinMS),
		logger.Int("latency_max_ms", cfg.LatencyMaxMS),
	)

	// Optional metrics endpoint.
	var srv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		srv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		}
		go func() {
			log.Info(ctx, "serving metrics", logger.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error(ctx, "metrics server failed", logger.Error(err))
			}
		}()
	}

	demoCfg := demo.DefaultConfig()
	demoCfg.Prefix = cfg.APIPrefix
	if err := demo.Run(ctx, transport.Client(), demoCfg); err != nil {
		log.Error(ctx, "demo failed", logger.Error(err))
		os.Exit(1)
	}

	if srv != nil {
		// Keep serving metrics until interrupted.
		log.Info(ctx, "demo done; metrics endpoint stays up until interrupt")
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(ctx, "metrics server shutdown failed", logger.Error(err))
		}
	}
}

// newSlot opens the configured storage backend. The returned closer is
// a no-op for backends without resources.
func newSlot(ctx context.Context, cfg *config.Config) (repository.Slot, func(), error) {
	switch cfg.Backend {
	case config.BackendFile:
		slot, err := repository.NewFileSlot(cfg.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() {}, nil
	case config.BackendSQLite:
		slot, err := repository.NewSQLiteSlot(ctx, cfg.StoragePath, cfg.SlotName)
		if err != nil {
			return nil, nil, err
		}
		return slot, func() { _ = slot.Close() }, nil
	default:
		return repository.NewMemorySlot(), func() {}, nil
	}
}
