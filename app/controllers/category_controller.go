package controllers

import (
	"context"

	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/ctx"
	"github.com/shashiranjanraj/wisdorage/pkg/logger"
)

// CategoryStore is the category surface the controller calls. Implemented by
// repositories.CategoryRepository.
type CategoryStore interface {
	All(ctx context.Context) ([]models.Category, error)
}

// CategoryController serves the read-only category listing. Categories are
// seeded via the CLI; the API has no write routes for them.
type CategoryController struct {
	categories CategoryStore
}

func NewCategoryController(categories CategoryStore) *CategoryController {
	return &CategoryController{categories: categories}
}

// List answers every category.
func (cc *CategoryController) List(c *ctx.Context) {
	categories, err := cc.categories.All(c.Context())
	if err != nil {
		logger.WithCtx(c.Context()).Error("categories: list", "error", err)
		c.Internal()
		return
	}
	c.OK(categories)
}
