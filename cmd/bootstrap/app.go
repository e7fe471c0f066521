package bootstrap

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rottedfrog/rollout/config"
	httpapi "github.com/rottedfrog/rollout/internal/http"
	"github.com/rottedfrog/rollout/journal"
	loggerpkg "github.com/rottedfrog/rollout/logger"
	"github.com/rottedfrog/rollout/service"
)

// App wires together the journal, the append loop, and the optional
// operational HTTP server.
type App struct {
	cfg    config.Config
	logger loggerpkg.Logger
	input  io.Reader
}

// NewApp validates the configuration and returns a ready-to-run App.
func NewApp(cfg config.Config, logger loggerpkg.Logger) (*App, error) {
	if logger == nil {
		logger = loggerpkg.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &App{cfg: cfg, logger: logger, input: os.Stdin}, nil
}

// WithInput overrides the input stream. Used by tests; production reads stdin.
func (a *App) WithInput(r io.Reader) *App {
	if a == nil || r == nil {
		return a
	}
	a.input = r
	return a
}

// Run opens the journal, applies startup recovery, and drives the append
// loop until end-of-input, a fatal error, or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	jnl, err := journal.Open(journal.Options{
		Dir:          a.cfg.Dir,
		Prefix:       a.cfg.Prefix,
		MaxSizeBytes: a.cfg.MaxSizeBytes(),
		Keep:         a.cfg.Keep,
	}, a.logger)
	if err != nil {
		return err
	}
	defer jnl.Close()

	svc := service.NewAppendService(jnl, a.logger)
	if err := svc.Recover(a.cfg.RotateOnStart); err != nil {
		return err
	}

	if a.cfg.MetricsAddr != "" {
		stopServer := a.startMetricsServer()
		defer stopServer()
	}

	a.logger.Info("journal open",
		loggerpkg.F("dir", a.cfg.Dir),
		loggerpkg.F("prefix", a.cfg.Prefix),
		loggerpkg.F("max_size_bytes", a.cfg.MaxSizeBytes()),
		loggerpkg.F("keep", a.cfg.Keep),
		loggerpkg.F("resumed_size", jnl.Size()))

	return svc.Run(ctx, a.input)
}

func (a *App) startMetricsServer() func() {
	mux := http.NewServeMux()
	httpapi.NewHandler(a.logger).RegisterRoutes(mux)

	server := &http.Server{
		Addr:    a.cfg.MetricsAddr,
		Handler: mux,
	}

	go func() {
		a.logger.Info("metrics server listening", loggerpkg.F("addr", a.cfg.MetricsAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server error", loggerpkg.E(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Warn("metrics server shutdown failed", loggerpkg.E(err))
		}
	}
}
