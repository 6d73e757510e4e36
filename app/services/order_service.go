package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/app/models"
)

// OrderStore is the slice of the order repository the order service needs.
type OrderStore interface {
	ByBuyer(ctx context.Context, email string) ([]models.Order, error)
	Insert(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error)
	DeleteByBook(ctx context.Context, bookID string) (*mongo.DeleteResult, error)
}

// BookOrders is the slice of the book repository carrying the orderedBy mark.
type BookOrders interface {
	SetOrderedBy(ctx context.Context, id, email string) (*mongo.UpdateResult, error)
	ClearOrderedBy(ctx context.Context, id string) (*mongo.UpdateResult, error)
}

// OrderService pairs order writes with the orderedBy mark on books. The two
// writes per operation are sequential network calls with no atomicity; a
// failure between them leaves the collections out of sync.
type OrderService struct {
	orders OrderStore
	books  BookOrders
}

func NewOrderService(orders OrderStore, books BookOrders) *OrderService {
	return &OrderService{orders: orders, books: books}
}

// List returns a buyer's orders, newest first.
func (s *OrderService) List(ctx context.Context, email string) ([]models.Order, error) {
	return s.orders.ByBuyer(ctx, email)
}

// Place inserts the order document verbatim, then marks the referenced book
// as ordered by the buyer. Once dispatched the writes are not cancellable.
func (s *OrderService) Place(ctx context.Context, doc map[string]interface{}) (*mongo.InsertOneResult, error) {
	ctx = context.WithoutCancel(ctx)

	res, err := s.orders.Insert(ctx, doc)
	if err != nil {
		return nil, err
	}

	bookID, _ := doc["bookId"].(string)
	buyer, _ := doc["buyerEmail"].(string)
	if _, err := s.books.SetOrderedBy(ctx, bookID, buyer); err != nil {
		return nil, err
	}
	return res, nil
}

// Cancel releases the book's orderedBy mark, then deletes one order matched
// by bookId. When several orders reference the same book, which one goes is
// up to the store.
func (s *OrderService) Cancel(ctx context.Context, bookID string) (*mongo.DeleteResult, error) {
	ctx = context.WithoutCancel(ctx)

	if _, err := s.books.ClearOrderedBy(ctx, bookID); err != nil {
		return nil, err
	}
	return s.orders.DeleteByBook(ctx, bookID)
}
