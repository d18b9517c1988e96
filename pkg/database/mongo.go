// Package database owns the MongoDB connection.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zhaygo/backend/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect opens the MongoDB connection and verifies it with a ping.
// Returns an error instead of exiting so the caller can shut down gracefully.
func Connect(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	var err error
	client, err = mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}

	db = client.Database(config.MongoDatabase())
	return nil
}

// DB returns the application database. Connect must have been called.
func DB() *mongo.Database {
	if db == nil {
		panic("database: DB() called before Connect()")
	}
	return db
}

// Ping verifies the connection is still live. Used by the health endpoint.
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("database: not connected")
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func Close(ctx context.Context) error {
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return client.Disconnect(ctx)
}
