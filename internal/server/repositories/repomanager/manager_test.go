package repomanager

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsBackendByScheme(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		dsn  string
		want any
	}{
		{name: "memory", dsn: "memory://", want: &MemoryRepositoryManager{}},
		{name: "postgres", dsn: "postgres://u:p@127.0.0.1:5432/auth?sslmode=disable", want: &PostgresRepositoryManager{}},
		{name: "postgresql", dsn: "postgresql://u:p@127.0.0.1:5432/auth", want: &PostgresRepositoryManager{}},
		{name: "mongodb", dsn: "mongodb://127.0.0.1:27017/scalable-login", want: &MongoRepositoryManager{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(ctx, tt.dsn)
			require.NoError(t, err)
			t.Cleanup(func() { _ = m.Close(ctx) })
			assert.IsType(t, tt.want, m)
		})
	}
}

func TestNew_RejectsUnknownScheme(t *testing.T) {
	_, err := New(context.Background(), "redis://127.0.0.1:6379/0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported dsn scheme "redis"`)

	_, err = New(context.Background(), "::not a url")
	require.Error(t, err)
}

func TestMemoryRepositoryManager(t *testing.T) {
	m := NewMemoryRepositoryManager()
	ctx := context.Background()

	require.NoError(t, m.RunMigrations(ctx))
	require.NoError(t, m.Ping(ctx))
	assert.Same(t, m.Users(), m.Users(), "one store per manager")

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, m.Ping(canceled), context.Canceled)
	assert.NoError(t, m.Close(ctx))
}

func TestMongoDatabaseName(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "mongodb://127.0.0.1:27017/scalable-login", want: "scalable-login"},
		{dsn: "mongodb://127.0.0.1:27017/auth?retryWrites=true", want: "auth"},
		{dsn: "mongodb://127.0.0.1:27017", want: DefaultMongoDatabase},
		{dsn: "mongodb+srv://user:pw@cluster0.example.net/", want: DefaultMongoDatabase},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := mongoDatabaseName(tt.dsn)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewMongoRepositoryManager_UsesDatabaseFromDSN(t *testing.T) {
	ctx := context.Background()
	m, err := NewMongoRepositoryManager(ctx, "mongodb://127.0.0.1:27017/accounts")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close(ctx) })

	assert.Equal(t, "accounts", m.DatabaseName())
	assert.NotNil(t, m.Users())
}
