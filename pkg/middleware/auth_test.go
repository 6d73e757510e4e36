package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/wisdorage/pkg/auth"
	"github.com/shashiranjanraj/wisdorage/pkg/middleware"
)

func guarded(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var caller string
	h := middleware.AuthGuard(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, _ = middleware.CallerFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, &caller
}

func TestAuthGuard_MissingHeader(t *testing.T) {
	h, _ := guarded(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?email=a@x.com", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"access":"denied"}`, rec.Body.String())
}

func TestAuthGuard_InvalidToken(t *testing.T) {
	h, _ := guarded(t)
	req := httptest.NewRequest(http.MethodGet, "/?email=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer bogus")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"access":"denied"}`, rec.Body.String())
}

func TestAuthGuard_EmailMismatch(t *testing.T) {
	token, err := auth.GenerateToken("alice@x.com")
	require.NoError(t, err)

	h, _ := guarded(t)
	req := httptest.NewRequest(http.MethodGet, "/?email=bob@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"access":"forbidden"}`, rec.Body.String())
}

func TestAuthGuard_ValidTokenEstablishesCaller(t *testing.T) {
	token, err := auth.GenerateToken("alice@x.com")
	require.NoError(t, err)

	h, caller := guarded(t)
	req := httptest.NewRequest(http.MethodGet, "/?email=alice@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@x.com", *caller)
}
