// Package rbac provides the role gates sitting between the auth guard and
// the resource handlers.
package rbac

import (
	"context"
	"net/http"

	"github.com/shashiranjanraj/wisdorage/pkg/response"
)

// RoleLookup resolves the role of an account. found is false when no account
// exists for the email; err reports a store failure.
type RoleLookup func(ctx context.Context, email string) (role string, found bool, err error)

// Require returns middleware admitting only callers whose stored role equals
// role. The caller email is read from the email query parameter, the same
// identity the auth guard verified. Each request pays a store lookup; roles
// are never cached.
//
// A missing account or a role mismatch answers 403 {"access":"forbidden"}.
func Require(role string, lookup RoleLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := r.URL.Query().Get("email")

			got, found, err := lookup(r.Context(), email)
			if err != nil {
				response.Internal(w)
				return
			}
			if !found || got != role {
				response.Forbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
