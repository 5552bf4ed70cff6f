// Package users contains the user store: the Repository contract and its
// MongoDB, PostgreSQL and in-memory implementations.
package users

import (
	"context"

	"github.com/alaaldainabdo/scalable-login-system/internal/server/models"
)

// Repository persists user records.
//
// Create assigns user.ID and user.CreatedAt and returns the stored user. It
// fails with common.ErrorAlreadyExists when the email is taken.
// GetUserByEmail matches the email exactly and fails with common.ErrorNotFound
// when no user has it.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
