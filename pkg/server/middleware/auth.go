// Package middleware provides the bearer-token authentication middleware.
package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"

	"github.com/sivamani2003/accesshub/pkg/identity"
	"github.com/sivamani2003/accesshub/pkg/server/store"
	"github.com/sivamani2003/accesshub/pkg/token"
)

var bearerRegex = regexp.MustCompile(`^Bearer\s+(\S+)$`)

// Authenticator is middleware that validates session tokens and resolves the
// caller against the users store. The role placed in the request context is
// the stored one, not the token claim, so a stale token cannot carry an
// outdated role.
type Authenticator struct {
	Signer *token.Signer
	Users  store.UsersStore
}

// NewAuthenticator creates a new authentication middleware
func NewAuthenticator(signer *token.Signer, users store.UsersStore) *Authenticator {
	return &Authenticator{Signer: signer, Users: users}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// Middleware returns an HTTP middleware that validates session tokens
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")

		if len(authHeader) == 0 {
			unauthorized(w, "authentication required")
			return
		}

		tokenMatches := bearerRegex.FindStringSubmatch(authHeader)
		if len(tokenMatches) != 2 {
			unauthorized(w, "malformed authorization header")
			return
		}

		claims, err := a.Signer.Parse(tokenMatches[1])
		if err != nil {
			unauthorized(w, "invalid or expired token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			unauthorized(w, "invalid or expired token")
			return
		}

		user, err := a.Users.FindByID(userID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				unauthorized(w, "user not found")
				return
			}
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}

		ctx := identity.Set(r.Context(), identity.FromUser(user))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
