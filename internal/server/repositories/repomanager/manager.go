// Package repomanager picks and owns the user store backend. A
// RepositoryManager vends repositories, runs schema migrations and reports
// store health.
package repomanager

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alaaldainabdo/scalable-login-system/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// New returns the RepositoryManager for the DSN scheme:
// mongodb and mongodb+srv select MongoDB, postgres and postgresql select
// PostgreSQL, memory selects the in-process store.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	switch u.Scheme {
	case "mongodb", "mongodb+srv":
		return NewMongoRepositoryManager(ctx, dsn)
	case "postgres", "postgresql":
		return OpenPostgresRepositoryManager(dsn)
	case "memory":
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported dsn scheme %q", u.Scheme)
	}
}
