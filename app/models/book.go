package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Category is a read-only book category. Categories are seeded once; the API
// never creates or mutates them.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
	Img  string             `bson:"img,omitempty" json:"img,omitempty"`
}

// Book is a second-hand book listed by a seller.
//
// OrderedBy is the buyer's email while a live order references the book, and
// is cleared when that order is cancelled. VerifiedSeller mirrors the owning
// user's verified flag and is propagated by the admin verify routes.
type Book struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Writer         string             `bson:"writer,omitempty" json:"writer,omitempty"`
	Img            string             `bson:"img,omitempty" json:"img,omitempty"`
	CategoryID     string             `bson:"categoryId" json:"categoryId"`
	SellerName     string             `bson:"sellerName,omitempty" json:"sellerName,omitempty"`
	SellerEmail    string             `bson:"sellerEmail" json:"sellerEmail"`
	OriginalPrice  int                `bson:"originalPrice,omitempty" json:"originalPrice,omitempty"`
	ResalePrice    int                `bson:"resalePrice" json:"resalePrice"`
	YearsOfUse     int                `bson:"yearsOfUse,omitempty" json:"yearsOfUse,omitempty"`
	Available      bool               `bson:"available" json:"available"`
	Location       string             `bson:"location" json:"location"`
	PostedIn       int64              `bson:"postedIn" json:"postedIn"`
	Advertised     bool               `bson:"advertised,omitempty" json:"advertised,omitempty"`
	VerifiedSeller bool               `bson:"verifiedSeller,omitempty" json:"verifiedSeller,omitempty"`
	OrderedBy      string             `bson:"orderedBy,omitempty" json:"orderedBy,omitempty"`
}
