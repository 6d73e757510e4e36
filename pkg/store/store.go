// Package store owns the shared MongoDB client for the marketplace
// collections. One client is created at startup and reused for the process
// lifetime; there is no reconnect logic — a failed initial connection is the
// caller's to log.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/wisdorage/config"
)

// Collection names used across the app.
const (
	Users      = "users"
	Categories = "categories"
	Books      = "books"
	Orders     = "orders"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect initialises the shared client and verifies it with a ping.
// Call once at startup.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Client().
		ApplyURI(config.MongoURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("store: connect: %w", err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		// Keep the client anyway: the driver retries server selection on
		// first use, which matches the fire-and-forget startup contract.
		client = c
		db = c.Database(config.MongoDB())
		return fmt.Errorf("store: ping: %w", err)
	}

	client = c
	db = c.Database(config.MongoDB())
	return nil
}

// Collection returns a handle in the marketplace database.
// Connect must have been called first.
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// DB returns the marketplace database handle.
func DB() *mongo.Database { return db }

// Disconnect closes the shared client. Used on shutdown and in tests.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// ─── Wire shapes ──────────────────────────────────────────────────────────────
//
// Several routes answer with the raw driver result, the same JSON the
// original API emitted. Result fields on the driver structs are only valid
// for acknowledged writes, which is the only write concern this app uses.

// InsertResult shapes an InsertOneResult for the wire.
func InsertResult(res *mongo.InsertOneResult) map[string]interface{} {
	return map[string]interface{}{
		"acknowledged": true,
		"insertedId":   hexID(res.InsertedID),
	}
}

// UpdateResult shapes an UpdateResult for the wire.
func UpdateResult(res *mongo.UpdateResult) map[string]interface{} {
	out := map[string]interface{}{
		"acknowledged":  true,
		"matchedCount":  res.MatchedCount,
		"modifiedCount": res.ModifiedCount,
		"upsertedCount": res.UpsertedCount,
		"upsertedId":    nil,
	}
	if res.UpsertedID != nil {
		out["upsertedId"] = hexID(res.UpsertedID)
	}
	return out
}

// DeleteResult shapes a DeleteResult for the wire.
func DeleteResult(res *mongo.DeleteResult) map[string]interface{} {
	return map[string]interface{}{
		"acknowledged": true,
		"deletedCount": res.DeletedCount,
	}
}

func hexID(id interface{}) interface{} {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return id
}
