package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/app/repositories"
	"github.com/shashiranjanraj/wisdorage/pkg/store"
)

func init() {
	Register("categories", SeedCategories)
}

// defaultCategories is the storefront's fixed category set. The API never
// writes categories, so this seed is the only way they come to exist.
var defaultCategories = []models.Category{
	{Name: "Fiction", Img: "https://i.ibb.co/categories/fiction.jpg"},
	{Name: "Non-Fiction", Img: "https://i.ibb.co/categories/non-fiction.jpg"},
	{Name: "Science", Img: "https://i.ibb.co/categories/science.jpg"},
	{Name: "History", Img: "https://i.ibb.co/categories/history.jpg"},
	{Name: "Biography", Img: "https://i.ibb.co/categories/biography.jpg"},
	{Name: "Children", Img: "https://i.ibb.co/categories/children.jpg"},
}

// SeedCategories inserts the default category set when the collection is
// empty. Re-running is a no-op.
func SeedCategories(ctx context.Context, db *mongo.Database) error {
	repo := repositories.NewCategoryRepository(db.Collection(store.Categories))

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return repo.InsertMany(ctx, defaultCategories)
}
