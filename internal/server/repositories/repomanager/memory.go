package repomanager

import (
	"context"

	"github.com/alaaldainabdo/scalable-login-system/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps all data in process memory. It is meant for
// local runs and tests; data is lost on restart.
type MemoryRepositoryManager struct {
	users *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (m *MemoryRepositoryManager) Close(context.Context) error {
	return nil
}
