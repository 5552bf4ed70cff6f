// Package http exposes the auth flows over a gin JSON API.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alaaldainabdo/scalable-login-system/internal/common"
	"github.com/alaaldainabdo/scalable-login-system/internal/logging"
	"github.com/alaaldainabdo/scalable-login-system/internal/server/models"
)

// UserService is what the handlers need from services.UserService.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

// Pinger reports store health for GET /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTPServer struct {
	address         string
	logger          logging.Logger
	users           UserService
	store           Pinger
	engine          *gin.Engine
	shutdownTimeout time.Duration
}

// NewHTTPServer builds the gin engine and routes. allowedOrigins is a
// comma-separated list; "*" allows any origin.
func NewHTTPServer(address string, l logging.Logger, us UserService, store Pinger, allowedOrigins string, shutdownTimeout time.Duration) *HTTPServer {
	s := &HTTPServer{
		address:         address,
		logger:          l.With("module", "http_server"),
		users:           us,
		store:           store,
		shutdownTimeout: shutdownTimeout,
	}
	s.engine = s.newEngine(allowedOrigins)
	return s
}

func (s *HTTPServer) newEngine(allowedOrigins string) *gin.Engine {
	r := gin.New()

	r.Use(requestID(), requestLogger(s.logger), recovery(s.logger), cors.New(corsConfig(allowedOrigins)))

	r.GET("/health", s.health)

	a := r.Group("/auth")
	a.POST("/register", s.register)
	a.POST("/login", s.login)
	a.GET("/me", s.me)

	return r
}

func corsConfig(allowedOrigins string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", common.AuthorizationHeaderName, common.RequestIDHeaderName}
	c.ExposeHeaders = []string{common.RequestIDHeaderName}
	c.MaxAge = 12 * time.Hour

	origins := make([]string, 0)
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// Handler returns the routed engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is canceled, then shuts down gracefully, waiting up to
// the shutdown timeout for in-flight requests.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		sctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		shutdownErr <- srv.Shutdown(sctx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cancel()
		<-shutdownErr
		return err
	}
	return <-shutdownErr
}
