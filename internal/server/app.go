// Package server wires configuration, the user store, the auth service and
// the HTTP and gRPC endpoints, and runs them until a shutdown signal.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/alaaldainabdo/scalable-login-system/internal/logging"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/auth"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/config"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/repositories/repomanager"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/services"

	gs "github.com/alaaldainabdo/scalable-login-system/internal/server/grpc"
	hs "github.com/alaaldainabdo/scalable-login-system/internal/server/http"
)

// Seams for tests.
var (
	logOutput             io.Writer = os.Stdout
	newRepositoryManager            = repomanager.New
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	userService *services.UserService
}

// NewApp validates c, opens the store selected by the DSN and applies its
// migrations.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewJSONLogger(logOutput, c.LogLevel)

	rm, err := newRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := rm.RunMigrations(ctx); err != nil {
		_ = rm.Close(ctx)
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	us := services.NewUserService(rm, auth.NewBcryptHasher(), c)

	return &App{config: c, logger: logger, repomanager: rm, userService: us}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := hs.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.repomanager,
		app.config.CORSAllowedOrigins, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "HTTP server failed", "error", err)
		cancelFunc()
		return err
	}
	return nil
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.repomanager, app.config.HealthCheckInterval)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, "gRPC server failed", "error", err)
		cancelFunc()
		return err
	}
	return nil
}

// Run starts both servers and blocks until ctx is canceled, a signal
// arrives or a server fails. The store is closed before returning. The gRPC
// endpoint is skipped when its address is empty.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		runErrs []error
	)
	start := func(run func(context.Context, context.CancelFunc) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := run(ctx, cancelFunc); err != nil {
				mu.Lock()
				runErrs = append(runErrs, err)
				mu.Unlock()
			}
		}()
	}

	start(app.startHTTPServer)
	if app.config.EndpointAddrGRPC != "" {
		start(app.startGRPCServer)
	}

	wg.Wait()

	cctx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()
	if err := app.repomanager.Close(cctx); err != nil {
		app.logger.Warn(cctx, "store close failed", "error", err)
	}

	app.logger.Info(cctx, "App stopped")

	if len(runErrs) > 0 {
		return runErrs[0]
	}
	return nil
}
