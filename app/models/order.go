package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order records a buyer's claim on a book. The corresponding book document
// carries the buyer's email in orderedBy for as long as the order lives;
// the two writes are sequential and best-effort, not atomic.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookID     string             `bson:"bookId" json:"bookId"`
	BookTitle  string             `bson:"bookTitle,omitempty" json:"bookTitle,omitempty"`
	Price      int                `bson:"price,omitempty" json:"price,omitempty"`
	BuyerEmail string             `bson:"buyerEmail" json:"buyerEmail"`
	OrderDate  int64              `bson:"orderDate" json:"orderDate"`
}
