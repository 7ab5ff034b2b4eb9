package store

import "github.com/sivamani2003/accesshub/pkg/model"

// NewUser carries the inputs for creating a user. Password must already be
// hashed by the caller.
type NewUser struct {
	Username     string
	PasswordHash string
	Role         model.Role
}

// UsersStore abstracts user storage operations
type UsersStore interface {
	// CreateUser persists a new user. Returns ErrUsernameTaken if the
	// username is already registered.
	CreateUser(newUser NewUser) (*model.User, error)

	// FindByUsername retrieves a user by username. Returns ErrUserNotFound
	// if no user matches.
	FindByUsername(username string) (*model.User, error)

	// FindByID retrieves a user by id. Returns ErrUserNotFound if no user
	// matches.
	FindByID(id uint) (*model.User, error)
}
