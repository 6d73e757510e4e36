// Package graphql exposes the read-only catalog browse API: categories, the
// advertisement shelf and per-category book listings in one request. It
// serves storefront reads only; every write stays on the REST routes.
package graphql

import (
	"context"
	"net/http"

	gql "github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/wisdorage/app/models"
	gqlhttp "github.com/shashiranjanraj/wisdorage/pkg/graphql"
)

// CategoryStore and BookStore are the read surfaces the resolvers call.
type CategoryStore interface {
	All(ctx context.Context) ([]models.Category, error)
}

type BookStore interface {
	ByCategory(ctx context.Context, categoryID string) ([]models.Book, error)
	Advertised(ctx context.Context) ([]models.Book, error)
}

var categoryType = gql.NewObject(gql.ObjectConfig{
	Name: "Category",
	Fields: gql.Fields{
		"id": &gql.Field{
			Type: gql.String,
			Resolve: func(p gql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Category).ID.Hex(), nil
			},
		},
		"name": &gql.Field{Type: gql.String},
		"img":  &gql.Field{Type: gql.String},
	},
})

var bookType = gql.NewObject(gql.ObjectConfig{
	Name: "Book",
	Fields: gql.Fields{
		"id": &gql.Field{
			Type: gql.String,
			Resolve: func(p gql.ResolveParams) (interface{}, error) {
				return p.Source.(models.Book).ID.Hex(), nil
			},
		},
		"title":          &gql.Field{Type: gql.String},
		"writer":         &gql.Field{Type: gql.String},
		"img":            &gql.Field{Type: gql.String},
		"categoryId":     &gql.Field{Type: gql.String},
		"sellerName":     &gql.Field{Type: gql.String},
		"sellerEmail":    &gql.Field{Type: gql.String},
		"originalPrice":  &gql.Field{Type: gql.Int},
		"resalePrice":    &gql.Field{Type: gql.Int},
		"yearsOfUse":     &gql.Field{Type: gql.Int},
		"available":      &gql.Field{Type: gql.Boolean},
		"location":       &gql.Field{Type: gql.String},
		"postedIn":       &gql.Field{Type: gql.Int},
		"advertised":     &gql.Field{Type: gql.Boolean},
		"verifiedSeller": &gql.Field{Type: gql.Boolean},
		"orderedBy":      &gql.Field{Type: gql.String},
	},
})

// NewHandler builds the catalog schema over the given stores and returns the
// POST /graphql handler.
func NewHandler(categories CategoryStore, books BookStore) (http.HandlerFunc, error) {
	root := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"categories": &gql.Field{
				Type: gql.NewList(categoryType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return categories.All(p.Context)
				},
			},
			"advertisedBooks": &gql.Field{
				Type: gql.NewList(bookType),
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					return books.Advertised(p.Context)
				},
			},
			"booksByCategory": &gql.Field{
				Type: gql.NewList(bookType),
				Args: gql.FieldConfigArgument{
					"categoryId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: func(p gql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["categoryId"].(string)
					return books.ByCategory(p.Context, id)
				},
			},
		},
	})

	schema, err := gqlhttp.NewSchema(root)
	if err != nil {
		return nil, err
	}
	return gqlhttp.Handler(schema), nil
}
