// Package services contains application services for the authctl client.
// This file defines the authentication service: register, login, whoami,
// logout, and housekeeping of the locally stored session.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alaaldainabdo/scalable-login-system/internal/client/client"
	"github.com/alaaldainabdo/scalable-login-system/internal/client/repositories/metadata"
	"github.com/alaaldainabdo/scalable-login-system/internal/common"
	"github.com/alaaldainabdo/scalable-login-system/internal/dbx"
)

// ErrNotLoggedIn is returned when no session is stored locally.
var ErrNotLoggedIn = errors.New("not logged in")

// Session is the identity behind the stored token.
type Session struct {
	Email string
	ID    string
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new user on the server.
//   - Login: exchange credentials for a token and store the session locally.
//   - WhoAmI: resolve the stored token against the server.
//   - Logout: wipe the local session.
//   - Ping: check server liveness.
//   - Close: release the API client and the session database.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, name, email string, password []byte) (string, error)
	Login(ctx context.Context, email string, password []byte) error
	WhoAmI(ctx context.Context) (*Session, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client
// and a local SQL database for the session.
type authService struct {
	client client.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

// Register creates a new account and returns the name the server stored.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (string, error) {
	return a.client.Register(ctx, name, email, string(password))
}

// Login authenticates against the server and replaces the stored session.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	token, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.saveSession(ctx, email, token); err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

// saveSession writes email and token in a single transaction.
func (a *authService) saveSession(ctx context.Context, email, token string) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyEmail, email); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyToken, token)
	})
}

// WhoAmI asks the server who the stored token belongs to. A token the server
// rejects is dropped from the local store.
func (a *authService) WhoAmI(ctx context.Context) (*Session, error) {
	repo := metadata.NewSQLiteRepository(a.db)

	token, err := repo.Get(ctx, metadata.KeyToken)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}

	email, err := repo.Get(ctx, metadata.KeyEmail)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}

	id, err := a.client.Me(ctx, token)
	if errors.Is(err, client.ErrUnauthorized) {
		_ = repo.Clear(ctx)
		return nil, fmt.Errorf("%w: session expired", ErrNotLoggedIn)
	}
	if err != nil {
		return nil, err
	}

	return &Session{Email: email, ID: id}, nil
}

// Logout wipes the stored session.
func (a *authService) Logout(ctx context.Context) error {
	return metadata.NewSQLiteRepository(a.db).Clear(ctx)
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases the API client and the session database.
func (a *authService) Close(ctx context.Context) error {
	return errors.Join(a.client.Close(), a.db.Close())
}
