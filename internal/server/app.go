// Package server initializes and runs the point-of-sale backend: it opens
// the data file, wires the services and starts the HTTP server, shutting
// everything down cleanly on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/tillbox/internal/logging"
	"github.com/dmitrijs2005/tillbox/internal/server/config"
	"github.com/dmitrijs2005/tillbox/internal/server/db"
	"github.com/dmitrijs2005/tillbox/internal/server/httpapi"
	"github.com/dmitrijs2005/tillbox/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/tillbox/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.Server
	closer func() error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	m := repomanager.NewSQLiteRepositoryManager()

	database, err := db.Open(ctx, cfg.DataFile, m, logger)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	srv := httpapi.NewServer(
		cfg.EndpointAddrHTTP,
		logger,
		services.NewInventoryService(database, m),
		services.NewCheckoutService(database, m, logger),
		services.NewReportsService(database, m, cfg.LowStockThreshold),
		services.NewSettingsService(database, m),
		services.NewUserService(database, m, cfg, logger),
		services.NewBackupService(database, cfg, logger),
		cfg.SecretKey,
	)

	return &App{config: cfg, logger: logger, server: srv, closer: database.Close}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.closer(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
