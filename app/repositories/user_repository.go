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

// UserRepository handles document operations on the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(col *mongo.Collection) *UserRepository {
	return &UserRepository{col: col}
}

// FindByEmail looks up a user by email. Returns mongo.ErrNoDocuments when no
// account exists.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	defer metrics.ObserveStoreOp("find", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert stores doc verbatim. The register route passes the request body
// through untouched, so doc is a raw document rather than a models.User.
func (r *UserRepository) Insert(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	defer metrics.ObserveStoreOp("insert", time.Now())
	return r.col.InsertOne(ctx, doc)
}

// ListByRole returns every user with the given role, soft-deleted ones
// included — the admin listings intentionally show deleted accounts.
func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	defer metrics.ObserveStoreOp("find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, err
	}

	users := []models.User{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SoftDelete marks the account deleted. Upsert semantics: if no document
// exists for the email one is created carrying only the flag.
func (r *UserRepository) SoftDelete(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	defer metrics.ObserveStoreOp("update", time.Now())

	return r.col.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"deleted": true}},
		options.Update().SetUpsert(true),
	)
}

// SetVerified sets the verified flag. Cancelling removes the field instead of
// writing false, mirroring how the flag is absent on fresh accounts.
func (r *UserRepository) SetVerified(ctx context.Context, email string, verified bool) (*mongo.UpdateResult, error) {
	defer metrics.ObserveStoreOp("update", time.Now())

	update := bson.M{"$unset": bson.M{"verified": ""}}
	if verified {
		update = bson.M{"$set": bson.M{"verified": true}}
	}
	return r.col.UpdateOne(ctx, bson.M{"email": email}, update)
}
