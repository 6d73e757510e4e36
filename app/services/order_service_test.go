package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/app/services"
)

type fakeOrders struct {
	insertErr error
	deleteErr error

	inserted []interface{}
	deleted  []string
}

func (f *fakeOrders) ByBuyer(_ context.Context, email string) ([]models.Order, error) {
	return []models.Order{{BuyerEmail: email}}, nil
}

func (f *fakeOrders) Insert(_ context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, doc)
	return &mongo.InsertOneResult{InsertedID: "o1"}, nil
}

func (f *fakeOrders) DeleteByBook(_ context.Context, bookID string) (*mongo.DeleteResult, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, bookID)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

type fakeBookOrders struct {
	setErr   error
	clearErr error

	set     map[string]string
	cleared []string
}

func (f *fakeBookOrders) SetOrderedBy(_ context.Context, id, email string) (*mongo.UpdateResult, error) {
	if f.setErr != nil {
		return nil, f.setErr
	}
	if f.set == nil {
		f.set = map[string]string{}
	}
	f.set[id] = email
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeBookOrders) ClearOrderedBy(_ context.Context, id string) (*mongo.UpdateResult, error) {
	if f.clearErr != nil {
		return nil, f.clearErr
	}
	f.cleared = append(f.cleared, id)
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func TestPlace_InsertsOrderAndMarksBook(t *testing.T) {
	orders := &fakeOrders{}
	books := &fakeBookOrders{}
	svc := services.NewOrderService(orders, books)

	res, err := svc.Place(context.Background(), map[string]interface{}{
		"bookId":     "b1",
		"buyerEmail": "buyer@x.com",
		"price":      120,
	})
	require.NoError(t, err)
	assert.Equal(t, "o1", res.InsertedID)
	assert.Len(t, orders.inserted, 1)
	assert.Equal(t, "buyer@x.com", books.set["b1"])
}

func TestPlace_InsertFailureSkipsBookWrite(t *testing.T) {
	orders := &fakeOrders{insertErr: errors.New("store down")}
	books := &fakeBookOrders{}
	svc := services.NewOrderService(orders, books)

	_, err := svc.Place(context.Background(), map[string]interface{}{"bookId": "b1"})
	assert.Error(t, err)
	assert.Empty(t, books.set)
}

func TestPlace_BookWriteFailureSurfaces(t *testing.T) {
	orders := &fakeOrders{}
	books := &fakeBookOrders{setErr: errors.New("store down")}
	svc := services.NewOrderService(orders, books)

	_, err := svc.Place(context.Background(), map[string]interface{}{"bookId": "b1"})
	assert.Error(t, err)
	// The order insert already happened; the two writes are not atomic.
	assert.Len(t, orders.inserted, 1)
}

func TestCancel_ClearsBookThenDeletesOrder(t *testing.T) {
	orders := &fakeOrders{}
	books := &fakeBookOrders{}
	svc := services.NewOrderService(orders, books)

	res, err := svc.Cancel(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
	assert.Equal(t, []string{"b1"}, books.cleared)
	assert.Equal(t, []string{"b1"}, orders.deleted)
}

func TestCancel_ClearFailureSkipsDelete(t *testing.T) {
	orders := &fakeOrders{}
	books := &fakeBookOrders{clearErr: errors.New("store down")}
	svc := services.NewOrderService(orders, books)

	_, err := svc.Cancel(context.Background(), "b1")
	assert.Error(t, err)
	assert.Empty(t, orders.deleted)
}
