// Package ctx provides a compact request context for Wisdorage handlers.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a single *Context with helpers for the few things this API does:
// path params, query params, JSON bodies in, JSON bodies out.
//
//	func GetUser(c *ctx.Context) {
//	    email := c.Param("email")
//	    c.JSON(http.StatusOK, user)
//	}
//
//	router.Get("/user/{email}", "users.show", ctx.Wrap(GetUser))
package ctx

import (
	"context"
	"mime/multipart"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/wisdorage/pkg/bind"
	"github.com/shashiranjanraj/wisdorage/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc so it can be
// passed to any router method.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W http.ResponseWriter
	R *http.Request
}

// pool recycles Context objects to reduce GC pressure.
var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter (e.g. "/user/{email}" → c.Param("email")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// Query returns a query-string value, or "" if not present.
func (c *Context) Query(key string) string {
	return c.R.URL.Query().Get(key)
}

// BindJSON decodes the JSON body into dest. On malformed input it writes a
// 400 and returns false; the handler should return immediately.
func (c *Context) BindJSON(dest any) bool {
	if err := bind.JSON(c.R, dest); err != nil {
		response.BadRequest(c.W, err.Error())
		return false
	}
	return true
}

// FormFile returns the uploaded file under the given multipart field.
func (c *Context) FormFile(field string) (multipart.File, *multipart.FileHeader, error) {
	return c.R.FormFile(field)
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// ─── Response helpers ─────────────────────────────────────────────────────────

// JSON writes v verbatim with the given status code. Response shapes are part
// of the wire contract, so there is no envelope.
func (c *Context) JSON(code int, v any) {
	response.JSON(c.W, code, v)
}

// OK writes v verbatim with a 200.
func (c *Context) OK(v any) {
	response.JSON(c.W, http.StatusOK, v)
}

// Internal answers the generic 500 used for store failures.
func (c *Context) Internal() {
	response.Internal(c.W)
}

// BadRequest answers 400 with a short message.
func (c *Context) BadRequest(message string) {
	response.BadRequest(c.W, message)
}
