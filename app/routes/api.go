// Package routes maps the HTTP surface onto controllers and composes the
// guard chain per route: AuthGuard where a credential is required, a role
// gate on top where a role is required, several routes with neither.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/wisdorage/app/controllers"
	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/ctx"
	"github.com/shashiranjanraj/wisdorage/pkg/metrics"
	"github.com/shashiranjanraj/wisdorage/pkg/middleware"
	"github.com/shashiranjanraj/wisdorage/pkg/rbac"
	"github.com/shashiranjanraj/wisdorage/pkg/router"
	"github.com/shashiranjanraj/wisdorage/pkg/ws"
)

// API bundles everything RegisterAPI mounts.
type API struct {
	Status     *controllers.StatusController
	Auth       *controllers.AuthController
	Users      *controllers.UserController
	Books      *controllers.BookController
	Orders     *controllers.OrderController
	Categories *controllers.CategoryController

	// Roles backs the role gates with a per-request store lookup.
	Roles rbac.RoleLookup

	// GraphQL is the catalog browse handler; nil disables the route.
	GraphQL http.HandlerFunc

	// Feed is the activity-feed hub; nil disables the route.
	Feed *ws.Hub
}

// RegisterAPI mounts the full route table.
func RegisterAPI(r *router.Router, api *API) {
	admin := rbac.Require(models.RoleAdmin, api.Roles)
	seller := rbac.Require(models.RoleSeller, api.Roles)

	r.Get("/", "status", ctx.Wrap(api.Status.Home))
	r.Get("/jwt", "auth.token", ctx.Wrap(api.Auth.Token))

	// Users
	r.Post("/user", "users.register", ctx.Wrap(api.Users.Register))
	r.Get("/user", "users.role", ctx.Wrap(api.Users.Role), middleware.AuthGuard)
	r.Get("/users", "users.byRole", ctx.Wrap(api.Users.ListByRole), middleware.AuthGuard, admin)
	r.Get("/sellers", "users.sellers", ctx.Wrap(api.Users.Sellers), middleware.AuthGuard, admin)
	r.Get("/buyers", "users.buyers", ctx.Wrap(api.Users.Buyers), middleware.AuthGuard, admin)
	r.Delete("/user/{email}", "users.delete", ctx.Wrap(api.Users.Delete), middleware.AuthGuard, admin)
	r.Get("/is-deleted/{user}", "users.isDeleted", ctx.Wrap(api.Users.IsDeleted))
	r.Put("/user/verify/{user}", "users.verify", ctx.Wrap(api.Users.Verify), middleware.AuthGuard, admin)
	r.Put("/user/cancel-verified/{user}", "users.cancelVerify", ctx.Wrap(api.Users.CancelVerify), middleware.AuthGuard, admin)

	// Catalog
	r.Get("/categories", "categories.list", ctx.Wrap(api.Categories.List))
	r.Get("/books/{category}", "books.byCategory", ctx.Wrap(api.Books.ByCategory), middleware.AuthGuard)
	r.Get("/my-books", "books.mine", ctx.Wrap(api.Books.Mine), middleware.AuthGuard, seller)
	r.Get("/ad/books", "books.advertised", ctx.Wrap(api.Books.AdBooks))
	r.Put("/ad/book/{id}", "books.advertise", ctx.Wrap(api.Books.Advertise), middleware.AuthGuard, seller)
	r.Post("/book", "books.create", ctx.Wrap(api.Books.Create))
	r.Put("/edit/book/{id}", "books.edit", ctx.Wrap(api.Books.Edit), middleware.AuthGuard, seller)
	r.Put("/book/{id}/cover", "books.cover", ctx.Wrap(api.Books.UploadCover), middleware.AuthGuard, seller)

	// Orders
	r.Get("/orders", "orders.list", ctx.Wrap(api.Orders.List), middleware.AuthGuard)
	r.Post("/order", "orders.place", ctx.Wrap(api.Orders.Place), middleware.AuthGuard)
	r.Delete("/order/{bookId}", "orders.cancel", ctx.Wrap(api.Orders.Cancel), middleware.AuthGuard)

	// Side surfaces
	if api.GraphQL != nil {
		r.Post("/graphql", "graphql", api.GraphQL)
	}
	if api.Feed != nil {
		r.Get("/ws/feed", "feed", func(w http.ResponseWriter, req *http.Request) {
			ws.Upgrade(w, req, api.Feed)
		})
	}
	r.Get("/metrics", "metrics", metrics.Handler())
}
