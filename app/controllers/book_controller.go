package controllers

import (
	"context"
	"path/filepath"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/wisdorage/app/events"
	"github.com/shashiranjanraj/wisdorage/app/models"
	"github.com/shashiranjanraj/wisdorage/pkg/ctx"
	"github.com/shashiranjanraj/wisdorage/pkg/logger"
	"github.com/shashiranjanraj/wisdorage/pkg/storage"
	"github.com/shashiranjanraj/wisdorage/pkg/store"
)

// BookStore is the book surface the controller calls. Implemented by
// repositories.BookRepository.
type BookStore interface {
	ByCategory(ctx context.Context, categoryID string) ([]models.Book, error)
	BySeller(ctx context.Context, email string) ([]models.Book, error)
	Advertised(ctx context.Context) ([]models.Book, error)
	Insert(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error)
	SetAdvertised(ctx context.Context, id string) (*mongo.UpdateResult, error)
	Edit(ctx context.Context, id string, resalePrice int, available bool, location string) (*mongo.UpdateResult, error)
	SetCover(ctx context.Context, id, url string) (*mongo.UpdateResult, error)
}

// BookController handles the catalog and seller book mutations. Mutations
// look books up by id only; there is no check that the caller is the book's
// seller.
type BookController struct {
	books  BookStore
	covers storage.Disk
	feed   *events.Bus
}

func NewBookController(books BookStore, covers storage.Disk, feed *events.Bus) *BookController {
	return &BookController{books: books, covers: covers, feed: feed}
}

// ByCategory lists books in the category path parameter.
func (b *BookController) ByCategory(c *ctx.Context) {
	books, err := b.books.ByCategory(c.Context(), c.Param("category"))
	if err != nil {
		logger.WithCtx(c.Context()).Error("books: by category", "error", err)
		c.Internal()
		return
	}
	c.OK(books)
}

// Mine lists the caller's books, newest posting first.
func (b *BookController) Mine(c *ctx.Context) {
	books, err := b.books.BySeller(c.Context(), c.Query("email"))
	if err != nil {
		logger.WithCtx(c.Context()).Error("books: by seller", "error", err)
		c.Internal()
		return
	}
	c.OK(books)
}

// AdBooks lists the advertisement shelf.
func (b *BookController) AdBooks(c *ctx.Context) {
	books, err := b.books.Advertised(c.Context())
	if err != nil {
		logger.WithCtx(c.Context()).Error("books: advertised", "error", err)
		c.Internal()
		return
	}
	c.OK(books)
}

// Create inserts the posted book verbatim and answers the raw insert result.
func (b *BookController) Create(c *ctx.Context) {
	var doc map[string]interface{}
	if !c.BindJSON(&doc) {
		return
	}

	res, err := b.books.Insert(c.Context(), doc)
	if err != nil {
		logger.WithCtx(c.Context()).Error("books: create", "error", err)
		c.Internal()
		return
	}
	c.OK(store.InsertResult(res))
}

// Advertise flags the book for the advertisement shelf and answers the raw
// update result.
func (b *BookController) Advertise(c *ctx.Context) {
	id := c.Param("id")

	res, err := b.books.SetAdvertised(c.Context(), id)
	if err != nil {
		logger.WithCtx(c.Context()).Error("books: advertise", "id", id, "error", err)
		c.Internal()
		return
	}

	b.feed.Fire(events.BookAdvertised, events.BookEvent{ID: id})
	c.OK(store.UpdateResult(res))
}

// Edit updates the seller-editable fields and answers the raw update result.
func (b *BookController) Edit(c *ctx.Context) {
	var body struct {
		ID          string `json:"_id"`
		ResalePrice int    `json:"resalePrice"`
		Available   bool   `json:"available"`
		Location    string `json:"location"`
	}
	if !c.BindJSON(&body) {
		return
	}

	id := c.Param("id")
	res, err := b.books.Edit(c.Context(), id, body.ResalePrice, body.Available, body.Location)
	if err != nil {
		logger.WithCtx(c.Context()).Error("books: edit", "id", id, "error", err)
		c.Internal()
		return
	}
	c.OK(store.UpdateResult(res))
}

// UploadCover stores the multipart "cover" file and points the book's img
// field at its public URL.
func (b *BookController) UploadCover(c *ctx.Context) {
	id := c.Param("id")

	file, header, err := c.FormFile("cover")
	if err != nil {
		c.BadRequest("cover file is required")
		return
	}
	defer file.Close()

	path := "covers/" + id + filepath.Ext(header.Filename)
	if err := b.covers.PutStream(path, file); err != nil {
		logger.WithCtx(c.Context()).Error("books: store cover", "id", id, "error", err)
		c.Internal()
		return
	}

	url := b.covers.URL(path)
	res, err := b.books.SetCover(c.Context(), id, url)
	if err != nil {
		logger.WithCtx(c.Context()).Error("books: set cover", "id", id, "error", err)
		c.Internal()
		return
	}

	out := store.UpdateResult(res)
	out["url"] = url
	c.OK(out)
}
