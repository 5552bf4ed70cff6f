package cli

import (
	"bufio"
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/alaaldainabdo/scalable-login-system/internal/client/client"
	"github.com/alaaldainabdo/scalable-login-system/internal/client/config"
	"github.com/alaaldainabdo/scalable-login-system/internal/client/services"
	"github.com/alaaldainabdo/scalable-login-system/internal/filex"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config      *config.Config
	authService services.AuthService
	reader      *bufio.Reader

	mu    sync.RWMutex
	email string
	Mode  Mode
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	path, err := filex.EnsureParentDir(c.SessionDBPath)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, path)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	as := services.NewAuthService(apiClient, db)

	return &App{config: c, authService: as, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) setEmail(email string) {
	a.mu.Lock()
	a.email = email
	a.mu.Unlock()
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.email != ""
}

// checkOnline pings the server once and updates Mode.
func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := a.authService.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// restoreSession adopts the stored login when the server still accepts its
// token. An unreachable server leaves the user logged out without touching
// the store.
func (a *App) restoreSession(ctx context.Context) {
	s, err := a.authService.WhoAmI(ctx)
	if err != nil {
		if !errors.Is(err, services.ErrNotLoggedIn) {
			log.Printf("Could not restore session: %s", describeError(err))
		}
		return
	}
	a.setEmail(s.Email)
	log.Printf("Restored session for %s", s.Email)
}
