// Package identity carries the authenticated identity through the request
// context. The authentication middleware is the only writer; handlers read it
// with Get and never mutate it.
package identity

import (
	"context"

	"github.com/sivamani2003/accesshub/pkg/model"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

// Key is the context key for Identity.
const Key ContextKey = "identity"

// Identity represents the authenticated user for a request. Role is resolved
// from storage at authentication time, not taken from the token.
type Identity struct {
	UserID   uint
	Username string
	Role     model.Role
}

// FromUser creates an Identity from a stored user record.
func FromUser(user *model.User) *Identity {
	return &Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}

// Get retrieves the Identity from the context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores the Identity in the context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
