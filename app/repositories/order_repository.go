package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/metrics"
)

// OrderRepository handles document operations on the orders collection.
type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(col *mongo.Collection) *OrderRepository {
	return &OrderRepository{col: col}
}

// ByBuyer lists a buyer's orders, newest first.
func (r *OrderRepository) ByBuyer(ctx context.Context, email string) ([]models.Order, error) {
	defer metrics.ObserveStoreOp("find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"buyerEmail": email}, opts)
	if err != nil {
		return nil, err
	}

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Insert stores doc verbatim; the order route passes the request body through
// untouched.
func (r *OrderRepository) Insert(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	defer metrics.ObserveStoreOp("insert", time.Now())
	return r.col.InsertOne(ctx, doc)
}

// DeleteByBook removes one order referencing the book. When several orders
// point at the same book, which one goes is up to the store.
func (r *OrderRepository) DeleteByBook(ctx context.Context, bookID string) (*mongo.DeleteResult, error) {
	defer metrics.ObserveStoreOp("delete", time.Now())
	return r.col.DeleteOne(ctx, bson.M{"bookId": bookID})
}

// DeleteByBuyer removes every order a buyer placed. Used by the account
// cascade.
func (r *OrderRepository) DeleteByBuyer(ctx context.Context, email string) (*mongo.DeleteResult, error) {
	defer metrics.ObserveStoreOp("delete", time.Now())
	return r.col.DeleteMany(ctx, bson.M{"buyerEmail": email})
}
