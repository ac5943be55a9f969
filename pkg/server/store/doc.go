// Package store provides storage abstractions for the UserHub server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints and flows to be decoupled from the specific database
// implementation. This enables easier testing with mocks and potential
// support for different storage backends.
//
// # Available Stores
//
//   - UsersStore: user record operations (create, find, list, delete)
//   - HealthStore: connectivity checks
//
// # Usage
//
//	users := gorm.NewUsersStore(db)
//	user, err := users.FindUserByEmail("ada@example.com")
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store
