package graphql_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appgraphql "github.com/shashiranjanraj/wisdorage/app/graphql"
	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/testkit"
)

type fakeCategories struct{}

func (fakeCategories) All(_ context.Context) ([]models.Category, error) {
	return []models.Category{{Name: "Fiction"}, {Name: "Science"}}, nil
}

type fakeBooks struct{}

func (fakeBooks) ByCategory(_ context.Context, id string) ([]models.Book, error) {
	if id != "c1" {
		return []models.Book{}, nil
	}
	return []models.Book{{Title: "Dune", CategoryID: "c1"}}, nil
}

func (fakeBooks) Advertised(_ context.Context) ([]models.Book, error) {
	return []models.Book{{Title: "Neuromancer", Advertised: true}}, nil
}

func newHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	h, err := appgraphql.NewHandler(fakeCategories{}, fakeBooks{})
	require.NoError(t, err)
	return h
}

func query(t *testing.T, h http.Handler, q string) map[string]interface{} {
	t.Helper()
	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodPost, "/graphql", map[string]string{"query": q}))
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data   map[string]interface{}   `json:"data"`
		Errors []map[string]interface{} `json:"errors"`
	}
	testkit.DecodeJSON(t, rec, &out)
	require.Empty(t, out.Errors)
	return out.Data
}

func TestCategoriesQuery(t *testing.T) {
	data := query(t, newHandler(t), `{ categories { name } }`)

	categories := data["categories"].([]interface{})
	require.Len(t, categories, 2)
	assert.Equal(t, "Fiction", categories[0].(map[string]interface{})["name"])
}

func TestAdvertisedBooksQuery(t *testing.T) {
	data := query(t, newHandler(t), `{ advertisedBooks { title advertised } }`)

	books := data["advertisedBooks"].([]interface{})
	require.Len(t, books, 1)
	assert.Equal(t, "Neuromancer", books[0].(map[string]interface{})["title"])
}

func TestBooksByCategoryQuery(t *testing.T) {
	h := newHandler(t)

	data := query(t, h, `{ booksByCategory(categoryId: "c1") { title categoryId } }`)
	books := data["booksByCategory"].([]interface{})
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].(map[string]interface{})["title"])

	data = query(t, h, `{ booksByCategory(categoryId: "nope") { title } }`)
	assert.Empty(t, data["booksByCategory"])
}

func TestMalformedRequestBody(t *testing.T) {
	h := newHandler(t)

	req := testkit.JSONRequest(t, http.MethodPost, "/graphql", nil)
	rec := testkit.Do(h, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
