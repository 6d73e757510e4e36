package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/metrics"
)

// CategoryRepository reads the categories collection. Categories are seeded
// via the CLI; the API never writes them.
type CategoryRepository struct {
	col *mongo.Collection
}

func NewCategoryRepository(col *mongo.Collection) *CategoryRepository {
	return &CategoryRepository{col: col}
}

// All returns every category.
func (r *CategoryRepository) All(ctx context.Context) ([]models.Category, error) {
	defer metrics.ObserveStoreOp("find", time.Now())

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Count returns the number of category documents.
func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	defer metrics.ObserveStoreOp("find", time.Now())
	return r.col.CountDocuments(ctx, bson.M{})
}

// InsertMany stores the given categories. Used by the seeder.
func (r *CategoryRepository) InsertMany(ctx context.Context, categories []models.Category) error {
	defer metrics.ObserveStoreOp("insert", time.Now())

	docs := make([]interface{}, len(categories))
	for i := range categories {
		docs[i] = categories[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}
