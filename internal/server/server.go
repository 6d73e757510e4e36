// Package server boots the Wisdorage API: config, store, storage, the
// activity-feed pipeline, and the HTTP surface.
package server

import (
	"fmt"
	"net/http"

	appgraphql "github.com/shashiranjanraj/wisdorage/app/graphql"

	"github.com/shashiranjanraj/wisdorage/app/controllers"
	"github.com/shashiranjanraj/wisdorage/app/events"
	"github.com/shashiranjanraj/wisdorage/app/repositories"
	"github.com/shashiranjanraj/wisdorage/app/routes"
	"github.com/shashiranjanraj/wisdorage/app/services"
	"github.com/shashiranjanraj/wisdorage/config"
	"github.com/shashiranjanraj/wisdorage/pkg/event"
	"github.com/shashiranjanraj/wisdorage/pkg/logger"
	"github.com/shashiranjanraj/wisdorage/pkg/metrics"
	"github.com/shashiranjanraj/wisdorage/pkg/middleware"
	"github.com/shashiranjanraj/wisdorage/pkg/reqid"
	"github.com/shashiranjanraj/wisdorage/pkg/router"
	"github.com/shashiranjanraj/wisdorage/pkg/storage"
	"github.com/shashiranjanraj/wisdorage/pkg/store"
	"github.com/shashiranjanraj/wisdorage/pkg/ws"
)

// Start boots every subsystem and serves until the listener fails.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	// A failed initial connection is logged, not fatal: the driver retries
	// server selection on first use, and the store may come up later.
	if err := store.Connect(); err != nil {
		logger.Error("store: initial connect failed", "error", err)
	}

	if config.LogMongo() {
		sink, err := logger.NewMongoHandler(store.Collection("logs"))
		if err != nil {
			logger.Warn("log sink disabled", "error", err)
		} else {
			logger.AttachHandler(sink)
		}
	}

	storage.Connect()

	hub := ws.NewHub()
	go hub.Run()

	var relay *event.RedisRelay
	if addr := config.RedisAddr(); addr != "" {
		r, err := event.NewRedisRelay(addr, config.RedisPassword())
		if err != nil {
			logger.Warn("event relay disabled", "error", err)
		} else {
			relay = r
		}
	}
	feed := events.NewBus(hub, relay)

	users := repositories.NewUserRepository(store.Collection(store.Users))
	books := repositories.NewBookRepository(store.Collection(store.Books))
	orders := repositories.NewOrderRepository(store.Collection(store.Orders))
	categories := repositories.NewCategoryRepository(store.Collection(store.Categories))

	accounts := services.NewAccountService(users, books, orders)
	orderDesk := services.NewOrderService(orders, books)

	browse, err := appgraphql.NewHandler(categories, books)
	if err != nil {
		return fmt.Errorf("graphql schema: %w", err)
	}

	r := NewRouter()
	routes.RegisterAPI(r, &routes.API{
		Status:     controllers.NewStatusController(),
		Auth:       controllers.NewAuthController(),
		Users:      controllers.NewUserController(accounts, feed),
		Books:      controllers.NewBookController(books, storage.Default(), feed),
		Orders:     controllers.NewOrderController(orderDesk, feed),
		Categories: controllers.NewCategoryController(categories),
		Roles:      accounts.Role,
		GraphQL:    browse,
		Feed:       hub,
	})

	addr := ":" + config.AppPort()
	logger.Info("wisdorage listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, r.Handler())
}

// NewRouter builds a router carrying the global middleware chain, in the
// order requests pass through it.
func NewRouter() *router.Router {
	r := router.New()
	r.Use(
		reqid.Middleware(),
		middleware.Logger,
		metrics.Middleware(),
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.Recovery,
	)
	return r
}
