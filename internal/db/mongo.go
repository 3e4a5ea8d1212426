package db

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"medialocker-backend-go/internal/config"
)

const (
	lockersCollection = "lockers"
	usersCollection   = "users"
)

// Mongo wraps the connected client and the application database. It is
// constructed once at startup and passed explicitly into the repositories;
// there is no package-level client handle.
type Mongo struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect establishes the MongoDB connection, verifies it with a ping, and
// ensures the indexes the application relies on. The returned Mongo owns the
// client; callers must Close it on shutdown.
func Connect(ctx context.Context, appConfig *config.Config) (*Mongo, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("Connect: appConfig cannot be nil")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(appConfig.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Best effort disconnect; startup is failing anyway.
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	m := &Mongo{
		client:   client,
		database: client.Database(appConfig.MongoDatabase),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	log.Printf("MongoDB connected, database %q", appConfig.MongoDatabase)
	return m, nil
}

// ensureIndexes creates the unique indexes backing the data-model
// invariants: locker `id` is globally unique and `username` is unique.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	_, err := m.database.Collection(lockersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("lockers id index: %w", err)
	}

	_, err = m.database.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("users username index: %w", err)
	}
	return nil
}

// Lockers returns the lockers collection handle.
func (m *Mongo) Lockers() *mongo.Collection {
	return m.database.Collection(lockersCollection)
}

// Users returns the users collection handle.
func (m *Mongo) Users() *mongo.Collection {
	return m.database.Collection(usersCollection)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
