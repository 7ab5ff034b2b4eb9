// Package store provides storage abstractions for the access request server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - UsersStore: user records and credentials
//   - SoftwareStore: catalog entries
//   - RequestsStore: access request lifecycle
//   - HealthStore: connectivity checks
//
// # Usage
//
//	users := gorm.NewUsersStore(db)
//	user, err := users.FindByUsername("alice")
//	if err != nil {
//	    if errors.Is(err, store.ErrUserNotFound) {
//	        // Handle not found
//	    }
//	}
package store
