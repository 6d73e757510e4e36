package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/metrics"
)

// BookRepository handles document operations on the books collection.
type BookRepository struct {
	col *mongo.Collection
}

func NewBookRepository(col *mongo.Collection) *BookRepository {
	return &BookRepository{col: col}
}

// ByCategory lists books in a category.
func (r *BookRepository) ByCategory(ctx context.Context, categoryID string) ([]models.Book, error) {
	defer metrics.ObserveStoreOp("find", time.Now())
	return r.find(ctx, bson.M{"categoryId": categoryID}, nil)
}

// BySeller lists a seller's books, newest posting first.
func (r *BookRepository) BySeller(ctx context.Context, email string) ([]models.Book, error) {
	defer metrics.ObserveStoreOp("find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "postedIn", Value: -1}})
	return r.find(ctx, bson.M{"sellerEmail": email}, opts)
}

// Advertised lists every book flagged for the advertisement shelf.
func (r *BookRepository) Advertised(ctx context.Context) ([]models.Book, error) {
	defer metrics.ObserveStoreOp("find", time.Now())
	return r.find(ctx, bson.M{"advertised": true}, nil)
}

// Insert stores doc verbatim; the create route passes the request body
// through untouched.
func (r *BookRepository) Insert(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	defer metrics.ObserveStoreOp("insert", time.Now())
	return r.col.InsertOne(ctx, doc)
}

// SetAdvertised flags a book for the advertisement shelf.
func (r *BookRepository) SetAdvertised(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	defer metrics.ObserveStoreOp("update", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"advertised": true}})
}

// Edit updates the seller-editable fields of a book.
func (r *BookRepository) Edit(ctx context.Context, id string, resalePrice int, available bool, location string) (*mongo.UpdateResult, error) {
	defer metrics.ObserveStoreOp("update", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"resalePrice": resalePrice,
		"available":   available,
		"location":    location,
	}})
}

// SetCover stores the public URL of an uploaded cover image.
func (r *BookRepository) SetCover(ctx context.Context, id, url string) (*mongo.UpdateResult, error) {
	defer metrics.ObserveStoreOp("update", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"img": url}})
}

// SetOrderedBy records the buyer currently holding an order on the book.
func (r *BookRepository) SetOrderedBy(ctx context.Context, id, email string) (*mongo.UpdateResult, error) {
	defer metrics.ObserveStoreOp("update", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"orderedBy": email}})
}

// ClearOrderedBy removes the buyer mark from one book.
func (r *BookRepository) ClearOrderedBy(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	defer metrics.ObserveStoreOp("update", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$unset": bson.M{"orderedBy": ""}})
}

// ClearOrderedByBuyer removes the buyer mark from every book a buyer had
// ordered. Used by the account cascade.
func (r *BookRepository) ClearOrderedByBuyer(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	defer metrics.ObserveStoreOp("update", time.Now())
	return r.col.UpdateMany(ctx, bson.M{"orderedBy": email}, bson.M{"$unset": bson.M{"orderedBy": ""}})
}

// DeleteBySeller removes every book a seller listed. Used by the account
// cascade.
func (r *BookRepository) DeleteBySeller(ctx context.Context, email string) (*mongo.DeleteResult, error) {
	defer metrics.ObserveStoreOp("delete", time.Now())
	return r.col.DeleteMany(ctx, bson.M{"sellerEmail": email})
}

// SetVerifiedSeller propagates the seller's verified flag onto all their
// books. Cancelling removes the field.
func (r *BookRepository) SetVerifiedSeller(ctx context.Context, email string, verified bool) (*mongo.UpdateResult, error) {
	defer metrics.ObserveStoreOp("update", time.Now())

	update := bson.M{"$unset": bson.M{"verifiedSeller": ""}}
	if verified {
		update = bson.M{"$set": bson.M{"verifiedSeller": true}}
	}
	return r.col.UpdateMany(ctx, bson.M{"sellerEmail": email}, update)
}

func (r *BookRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Book, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	books := []models.Book{}
	if err := cur.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}
