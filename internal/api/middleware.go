package api

import (
	"context"
	"net/http"

	"quizgen/internal/auth"
)

type contextKey struct{ name string }

var identityKey = &contextKey{"identity"}

// identityFrom returns the authenticated account email placed in the
// request context by requireAuth.
func identityFrom(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(identityKey).(string)
	return email, ok
}

// requireAuth extracts and verifies the bearer token, rejecting the
// request when it is missing (401) or invalid/expired (403).
func (a *API) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := auth.BearerToken(r.Header.Get("Authorization"))
		if err != nil {
			respondMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
			return
		}

		email, err := a.tokens.Verify(token)
		if err != nil {
			a.logger.Debug().Err(err).Msg("token verification failed")
			respondMessage(w, http.StatusForbidden, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
