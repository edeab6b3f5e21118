package account

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
)

type contextKey string

const claimsKey contextKey = "account.claims"

// RequireAuth verifies the Bearer session credential and stores its claims
// in the request context.
func RequireAuth(sessions *auth.Sessions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				writeError(w, auth.ErrSessionInvalid)
				return
			}

			claims, err := sessions.Verify(token)
			if err != nil {
				writeError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin allows only sessions carrying the admin claim. Must be
// mounted after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(r.Context())
		if !ok || !claims.IsAdmin {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func claimsFromContext(ctx context.Context) (*auth.SessionClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.SessionClaims)
	return claims, ok
}

// accountIDFromContext extracts the authenticated account ID.
func accountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	claims, ok := claimsFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	id, err := claims.AccountID()
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
