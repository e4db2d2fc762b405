// Package server initializes and runs the walletgate application server.
// It wires configuration into the derivation and session services and starts
// the HTTP API with graceful shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/walletgate/walletgate/internal/logging"
	"github.com/walletgate/walletgate/internal/server/auth"
	"github.com/walletgate/walletgate/internal/server/config"
	"github.com/walletgate/walletgate/internal/server/httpapi"
	"github.com/walletgate/walletgate/internal/wallet"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	deriver  *wallet.Deriver
	sessions *auth.Service
}

// NewApp builds the application from a validated Config. The server secret
// is handed to the deriver and the session service here and nowhere else;
// neither ever mutates it.
func NewApp(cfg *config.Config) (*App, error) {

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	secret := []byte(cfg.SecretKey)

	deriver, err := wallet.NewDeriver(secret)
	if err != nil {
		return nil, fmt.Errorf("deriver init error: %w", err)
	}

	sessions, err := auth.NewService(secret, cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("session service init error: %w", err)
	}

	return &App{config: cfg, logger: logger, deriver: deriver, sessions: sessions}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	srv := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.sessions, app.deriver)

	if err := srv.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return
	}

	app.logger.Info(ctx, "Server stopped gracefully")
}
