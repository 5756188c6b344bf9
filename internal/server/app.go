// Package server initializes and runs the credential service: it wires the
// backing store, the domain services, metrics, and the HTTP server, and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/refurnish/authcore/internal/logging"
	"github.com/refurnish/authcore/internal/server/config"
	"github.com/refurnish/authcore/internal/server/httpapi"
	"github.com/refurnish/authcore/internal/server/metrics"
	"github.com/refurnish/authcore/internal/server/products"
	"github.com/refurnish/authcore/internal/server/shared/db"
	"github.com/refurnish/authcore/internal/server/users"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	userService    *users.Service
	productService *products.Service
	httpServer     *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), rm.Sessions(), rm.LoginAudit(), cfg, logger)
	ps := products.NewService(rm.Products())

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, us, ps, collector, registry)

	return &App{
		config:         cfg,
		logger:         logger,
		userService:    us,
		productService: ps,
		httpServer:     srv,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
