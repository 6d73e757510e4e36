package controllers

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/app/events"
	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/ctx"
	"github.com/shashiranjanraj/wisdorage/pkg/logger"
	"github.com/shashiranjanraj/wisdorage/pkg/store"
)

// OrderDesk is the order surface the controller calls. Implemented by
// services.OrderService.
type OrderDesk interface {
	List(ctx context.Context, email string) ([]models.Order, error)
	Place(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error)
	Cancel(ctx context.Context, bookID string) (*mongo.DeleteResult, error)
}

// OrderController handles a buyer's orders.
type OrderController struct {
	orders OrderDesk
	feed   *events.Bus
}

func NewOrderController(orders OrderDesk, feed *events.Bus) *OrderController {
	return &OrderController{orders: orders, feed: feed}
}

// List answers the caller's orders, newest first.
func (o *OrderController) List(c *ctx.Context) {
	orders, err := o.orders.List(c.Context(), c.Query("email"))
	if err != nil {
		logger.WithCtx(c.Context()).Error("orders: list", "error", err)
		c.Internal()
		return
	}
	c.OK(orders)
}

// Place inserts the posted order verbatim, marks the book ordered and
// answers the raw insert result.
func (o *OrderController) Place(c *ctx.Context) {
	var doc map[string]interface{}
	if !c.BindJSON(&doc) {
		return
	}

	res, err := o.orders.Place(c.Context(), doc)
	if err != nil {
		logger.WithCtx(c.Context()).Error("orders: place", "error", err)
		c.Internal()
		return
	}

	bookID, _ := doc["bookId"].(string)
	buyer, _ := doc["buyerEmail"].(string)
	o.feed.Fire(events.OrderPlaced, events.OrderEvent{BookID: bookID, BuyerEmail: buyer})

	c.OK(store.InsertResult(res))
}

// Cancel releases the book and deletes one order matched by the bookId path
// parameter, answering the raw delete result.
func (o *OrderController) Cancel(c *ctx.Context) {
	bookID := c.Param("bookId")

	res, err := o.orders.Cancel(c.Context(), bookID)
	if err != nil {
		logger.WithCtx(c.Context()).Error("orders: cancel", "bookId", bookID, "error", err)
		c.Internal()
		return
	}

	o.feed.Fire(events.OrderCancelled, events.OrderEvent{BookID: bookID})
	c.OK(store.DeleteResult(res))
}
