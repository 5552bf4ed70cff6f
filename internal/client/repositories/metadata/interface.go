// Package metadata stores the CLI session as key/value pairs in sqlite.
package metadata

import (
	"context"
)

// Keys of the session record.
const (
	KeyEmail = "email"
	KeyToken = "token"
)

// Repository is a small key/value store. Get returns common.ErrorNotFound
// for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
