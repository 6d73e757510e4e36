// Package indexes creates the query indexes the API's filters lean on.
//
// There is deliberately no unique index on users.email: the register route's
// existence check is a plain find, and the store does not back it up.
package indexes

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/pkg/store"
)

// Ensure creates every index, reporting each one on stdout. Safe to re-run;
// existing indexes are left alone.
func Ensure(ctx context.Context, db *mongo.Database) error {
	specs := []struct {
		collection string
		key        string
	}{
		{store.Books, "sellerEmail"},
		{store.Books, "advertised"},
		{store.Books, "categoryId"},
		{store.Books, "orderedBy"},
		{store.Orders, "buyerEmail"},
		{store.Orders, "bookId"},
	}

	for _, s := range specs {
		fmt.Printf("  • Index %s.%s … ", s.collection, s.key)
		_, err := db.Collection(s.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: s.key, Value: 1}},
		})
		if err != nil {
			fmt.Println("FAILED")
			return fmt.Errorf("index %s.%s: %w", s.collection, s.key, err)
		}
		fmt.Println("done")
	}
	return nil
}
