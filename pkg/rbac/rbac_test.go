package rbac_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/wisdorage/pkg/rbac"
)

func gate(role string, lookup rbac.RoleLookup) http.Handler {
	return rbac.Require(role, lookup)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestRequire_Admits(t *testing.T) {
	h := gate("admin", func(_ context.Context, email string) (string, bool, error) {
		assert.Equal(t, "root@x.com", email)
		return "admin", true, nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?email=root@x.com", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequire_WrongRole(t *testing.T) {
	h := gate("admin", func(_ context.Context, _ string) (string, bool, error) {
		return "buyer", true, nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?email=b@x.com", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"access":"forbidden"}`, rec.Body.String())
}

func TestRequire_UnknownAccount(t *testing.T) {
	h := gate("seller", func(_ context.Context, _ string) (string, bool, error) {
		return "", false, nil
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?email=ghost@x.com", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequire_StoreFailure(t *testing.T) {
	h := gate("seller", func(_ context.Context, _ string) (string, bool, error) {
		return "", false, errors.New("store down")
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?email=s@x.com", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
