package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/pkg/store"
)

// The raw result shapes are part of the wire contract; clients key off the
// exact field names.

func TestInsertResult(t *testing.T) {
	oid := primitive.NewObjectID()
	out := store.InsertResult(&mongo.InsertOneResult{InsertedID: oid})

	assert.Equal(t, true, out["acknowledged"])
	assert.Equal(t, oid.Hex(), out["insertedId"])
}

func TestUpdateResult(t *testing.T) {
	out := store.UpdateResult(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1})

	assert.Equal(t, true, out["acknowledged"])
	assert.Equal(t, int64(1), out["matchedCount"])
	assert.Equal(t, int64(1), out["modifiedCount"])
	assert.Equal(t, int64(0), out["upsertedCount"])
	assert.Nil(t, out["upsertedId"])
}

func TestUpdateResultWithUpsert(t *testing.T) {
	oid := primitive.NewObjectID()
	out := store.UpdateResult(&mongo.UpdateResult{UpsertedCount: 1, UpsertedID: oid})

	assert.Equal(t, int64(1), out["upsertedCount"])
	assert.Equal(t, oid.Hex(), out["upsertedId"])
}

func TestDeleteResult(t *testing.T) {
	out := store.DeleteResult(&mongo.DeleteResult{DeletedCount: 3})

	assert.Equal(t, true, out["acknowledged"])
	assert.Equal(t, int64(3), out["deletedCount"])
}
