package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/wisdorage/pkg/auth"
	"github.com/shashiranjanraj/wisdorage/pkg/response"
)

// callerKey stores the verified caller email in the request context.
type callerKey struct{}

// CallerFromCtx returns the email established by AuthGuard.
func CallerFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(callerKey{}).(string)
	return email, ok
}

// AuthGuard verifies the bearer credential and binds it to the caller
// identity. Every request is verified independently; no session state.
//
// The authorization header carries "<scheme> <token>". A missing header or a
// token that fails signature/expiry checks answers 401 {"access":"denied"}.
// A valid token whose email claim differs from the email query parameter
// answers 403 {"access":"forbidden"} — the token must be used by the identity
// it was minted for.
func AuthGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			response.Denied(w)
			return
		}

		var token string
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
			token = parts[1]
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Denied(w)
			return
		}

		if claims.Email != r.URL.Query().Get("email") {
			response.Forbidden(w)
			return
		}

		ctx := context.WithValue(r.Context(), callerKey{}, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
