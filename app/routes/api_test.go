package routes_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/app/controllers"
	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/app/routes"
	"github.com/shashiranjanraj/wisdorage/pkg/auth"
	"github.com/shashiranjanraj/wisdorage/pkg/router"
	"github.com/shashiranjanraj/wisdorage/pkg/testkit"
)

// fakeDirectory implements controllers.AccountDirectory over a role map.
type fakeDirectory struct {
	roles      map[string]string
	registered []map[string]interface{}
	deleted    []string
}

func (f *fakeDirectory) Register(_ context.Context, doc map[string]interface{}) (bool, error) {
	email, _ := doc["email"].(string)
	if _, ok := f.roles[email]; ok {
		return false, nil
	}
	f.registered = append(f.registered, doc)
	return true, nil
}

func (f *fakeDirectory) Role(_ context.Context, email string) (string, bool, error) {
	role, ok := f.roles[email]
	return role, ok, nil
}

func (f *fakeDirectory) ListByRole(_ context.Context, role string) ([]models.User, error) {
	users := []models.User{}
	for email, r := range f.roles {
		if r == role {
			users = append(users, models.User{Email: email, Role: r})
		}
	}
	return users, nil
}

func (f *fakeDirectory) IsDeleted(_ context.Context, _ string) (bool, error) { return false, nil }

func (f *fakeDirectory) Delete(_ context.Context, email string) bool {
	f.deleted = append(f.deleted, email)
	return true
}

func (f *fakeDirectory) Verify(_ context.Context, _ string) (bool, error)       { return true, nil }
func (f *fakeDirectory) CancelVerify(_ context.Context, _ string) (bool, error) { return true, nil }

// fakeBooks implements controllers.BookStore in memory.
type fakeBooks struct {
	books []models.Book
}

func (f *fakeBooks) ByCategory(_ context.Context, id string) ([]models.Book, error) {
	out := []models.Book{}
	for _, b := range f.books {
		if b.CategoryID == id {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBooks) BySeller(_ context.Context, email string) ([]models.Book, error) {
	out := []models.Book{}
	for _, b := range f.books {
		if b.SellerEmail == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBooks) Advertised(_ context.Context) ([]models.Book, error) {
	out := []models.Book{}
	for _, b := range f.books {
		if b.Advertised {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBooks) Insert(_ context.Context, _ interface{}) (*mongo.InsertOneResult, error) {
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (f *fakeBooks) SetAdvertised(_ context.Context, _ string) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeBooks) Edit(_ context.Context, _ string, _ int, _ bool, _ string) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeBooks) SetCover(_ context.Context, _, _ string) (*mongo.UpdateResult, error) {
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

// fakeDesk implements controllers.OrderDesk.
type fakeDesk struct{}

func (fakeDesk) List(_ context.Context, email string) ([]models.Order, error) {
	return []models.Order{{BookID: "b1", BuyerEmail: email}}, nil
}

func (fakeDesk) Place(_ context.Context, _ map[string]interface{}) (*mongo.InsertOneResult, error) {
	return &mongo.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (fakeDesk) Cancel(_ context.Context, _ string) (*mongo.DeleteResult, error) {
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type fakeCategories struct{}

func (fakeCategories) All(_ context.Context) ([]models.Category, error) {
	return []models.Category{{Name: "Fiction"}}, nil
}

func newTestAPI(t *testing.T) (http.Handler, *fakeDirectory) {
	t.Helper()

	dir := &fakeDirectory{roles: map[string]string{
		"admin@x.com":  models.RoleAdmin,
		"seller@x.com": models.RoleSeller,
		"buyer@x.com":  models.RoleBuyer,
	}}

	r := router.New()
	routes.RegisterAPI(r, &routes.API{
		Status:     controllers.NewStatusController(),
		Auth:       controllers.NewAuthController(),
		Users:      controllers.NewUserController(dir, nil),
		Books:      controllers.NewBookController(&fakeBooks{books: []models.Book{{CategoryID: "c1", SellerEmail: "seller@x.com", Advertised: true}}}, nil, nil),
		Orders:     controllers.NewOrderController(fakeDesk{}, nil),
		Categories: controllers.NewCategoryController(fakeCategories{}),
		Roles:      dir.Role,
	})
	return r.Handler(), dir
}

func token(t *testing.T, email string) string {
	t.Helper()
	tok, err := auth.GenerateToken(email)
	require.NoError(t, err)
	return tok
}

func TestStatusRoute(t *testing.T) {
	h, _ := newTestAPI(t)
	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"running"}`, rec.Body.String())
}

func TestMintAndUseToken(t *testing.T) {
	h, _ := newTestAPI(t)

	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodGet, "/jwt?email=buyer@x.com", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var minted struct {
		Token string `json:"token"`
	}
	testkit.DecodeJSON(t, rec, &minted)
	require.NotEmpty(t, minted.Token)

	// Same email: admitted.
	req := testkit.JSONRequest(t, http.MethodGet, "/user?email=buyer@x.com", nil)
	rec = testkit.Do(h, testkit.Bearer(req, minted.Token))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role":"buyer"}`, rec.Body.String())

	// Different email: the token is bound to the identity it was minted for.
	req = testkit.JSONRequest(t, http.MethodGet, "/user?email=other@x.com", nil)
	rec = testkit.Do(h, testkit.Bearer(req, minted.Token))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"access":"forbidden"}`, rec.Body.String())
}

func TestRoleIsNullForUnknownAccount(t *testing.T) {
	h, _ := newTestAPI(t)

	req := testkit.JSONRequest(t, http.MethodGet, "/user?email=ghost@x.com", nil)
	rec := testkit.Do(h, testkit.Bearer(req, token(t, "ghost@x.com")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"role":null}`, rec.Body.String())
}

func TestAdminRouteGating(t *testing.T) {
	h, _ := newTestAPI(t)

	// No credential.
	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodGet, "/sellers?email=admin@x.com", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"access":"denied"}`, rec.Body.String())

	// Valid credential, wrong role.
	req := testkit.JSONRequest(t, http.MethodGet, "/sellers?email=buyer@x.com", nil)
	rec = testkit.Do(h, testkit.Bearer(req, token(t, "buyer@x.com")))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Admin.
	req = testkit.JSONRequest(t, http.MethodGet, "/sellers?email=admin@x.com", nil)
	rec = testkit.Do(h, testkit.Bearer(req, token(t, "admin@x.com")))
	assert.Equal(t, http.StatusOK, rec.Code)

	var sellers []models.User
	testkit.DecodeJSON(t, rec, &sellers)
	require.Len(t, sellers, 1)
	assert.Equal(t, "seller@x.com", sellers[0].Email)
}

func TestPublicCatalogRoutes(t *testing.T) {
	h, _ := newTestAPI(t)

	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodGet, "/categories", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = testkit.Do(h, testkit.JSONRequest(t, http.MethodGet, "/ad/books", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var books []models.Book
	testkit.DecodeJSON(t, rec, &books)
	require.Len(t, books, 1)
	assert.True(t, books[0].Advertised)
}

func TestCreateBookIsPublic(t *testing.T) {
	h, _ := newTestAPI(t)

	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodPost, "/book", map[string]interface{}{
		"title": "Clean Architecture", "categoryId": "c1",
	}))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res map[string]interface{}
	testkit.DecodeJSON(t, rec, &res)
	assert.Equal(t, true, res["acknowledged"])
	assert.NotEmpty(t, res["insertedId"])
}

func TestSellerRouteGating(t *testing.T) {
	h, _ := newTestAPI(t)

	req := testkit.JSONRequest(t, http.MethodGet, "/my-books?email=buyer@x.com", nil)
	rec := testkit.Do(h, testkit.Bearer(req, token(t, "buyer@x.com")))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = testkit.JSONRequest(t, http.MethodGet, "/my-books?email=seller@x.com", nil)
	rec = testkit.Do(h, testkit.Bearer(req, token(t, "seller@x.com")))
	assert.Equal(t, http.StatusOK, rec.Code)

	var books []models.Book
	testkit.DecodeJSON(t, rec, &books)
	require.Len(t, books, 1)
}

func TestOrderRoutes(t *testing.T) {
	h, _ := newTestAPI(t)
	tok := token(t, "buyer@x.com")

	req := testkit.JSONRequest(t, http.MethodPost, "/order?email=buyer@x.com", map[string]interface{}{
		"bookId": "b1", "buyerEmail": "buyer@x.com",
	})
	rec := testkit.Do(h, testkit.Bearer(req, tok))
	assert.Equal(t, http.StatusOK, rec.Code)

	var placed map[string]interface{}
	testkit.DecodeJSON(t, rec, &placed)
	assert.Equal(t, true, placed["acknowledged"])

	req = testkit.JSONRequest(t, http.MethodDelete, "/order/b1?email=buyer@x.com", nil)
	rec = testkit.Do(h, testkit.Bearer(req, tok))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
}

func TestRegisterIsPublicAndIdempotent(t *testing.T) {
	h, dir := newTestAPI(t)

	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodPost, "/user", map[string]interface{}{
		"email": "new@x.com", "role": "buyer",
	}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User Added"}`, rec.Body.String())
	require.Len(t, dir.registered, 1)

	rec = testkit.Do(h, testkit.JSONRequest(t, http.MethodPost, "/user", map[string]interface{}{
		"email": "buyer@x.com", "role": "admin",
	}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"User Already Exists"}`, rec.Body.String())
	assert.Len(t, dir.registered, 1, "existing email must not insert again")
}

func TestDeleteUserCascade(t *testing.T) {
	h, dir := newTestAPI(t)

	req := testkit.JSONRequest(t, http.MethodDelete, "/user/seller@x.com?email=admin@x.com", nil)
	rec := testkit.Do(h, testkit.Bearer(req, token(t, "admin@x.com")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"done":true}`, rec.Body.String())
	assert.Equal(t, []string{"seller@x.com"}, dir.deleted)
}

func TestIsDeletedIsPublic(t *testing.T) {
	h, _ := newTestAPI(t)

	rec := testkit.Do(h, testkit.JSONRequest(t, http.MethodGet, "/is-deleted/anyone@x.com", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"isDeleted":false}`, rec.Body.String())
}

func TestVerifyRoutes(t *testing.T) {
	h, _ := newTestAPI(t)
	tok := token(t, "admin@x.com")

	req := testkit.JSONRequest(t, http.MethodPut, "/user/verify/seller@x.com?email=admin@x.com", nil)
	rec := testkit.Do(h, testkit.Bearer(req, tok))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"verified":true}`, rec.Body.String())

	req = testkit.JSONRequest(t, http.MethodPut, "/user/cancel-verified/seller@x.com?email=admin@x.com", nil)
	rec = testkit.Do(h, testkit.Bearer(req, tok))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"cancelled":true}`, rec.Body.String())
}
