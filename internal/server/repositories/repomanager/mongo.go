package repomanager

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/alaaldainabdo/scalable-login-system/internal/server/repositories/users"
)

// DefaultMongoDatabase is used when the DSN names no database.
const DefaultMongoDatabase = "scalable-login"

// MongoRepositoryManager vends MongoDB-backed repositories from one client.
type MongoRepositoryManager struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoRepositoryManager creates a client for dsn. The driver connects
// lazily, so an unreachable server surfaces on first use.
func NewMongoRepositoryManager(ctx context.Context, dsn string) (*MongoRepositoryManager, error) {
	name, err := mongoDatabaseName(dsn)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	return &MongoRepositoryManager{client: client, db: client.Database(name)}, nil
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return users.NewMongoRepository(m.db.Collection(users.CollectionName))
}

// RunMigrations ensures the unique index on users.email exists.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	_, err := m.db.Collection(users.CollectionName).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}
	return nil
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// DatabaseName reports the database the manager works in.
func (m *MongoRepositoryManager) DatabaseName() string {
	return m.db.Name()
}

func mongoDatabaseName(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return DefaultMongoDatabase, nil
	}
	return name, nil
}
