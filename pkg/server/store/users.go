package store

import (
	"errors"
	"time"

	"github.com/davidosoro/userhub/pkg/model"
)

// ErrNotFound is returned when a lookup matches no record
var ErrNotFound = errors.New("record not found")

// UsersStore abstracts user record storage operations
type UsersStore interface {
	// CreateUser appends a new user record and returns the stored record
	// with its server-assigned ID and creation timestamp
	CreateUser(user *model.User) (*model.User, error)

	// FindUserByEmail returns the first record with the given email, or
	// ErrNotFound. Email is not unique at this layer; callers get the
	// earliest-created match.
	FindUserByEmail(email string) (*model.User, error)

	// ListUsers returns all user records ordered by creation time
	ListUsers() ([]model.User, error)

	// DeleteUserByID removes a record by ID. Returns false when no record
	// had that ID; this is not an error.
	DeleteUserByID(id string) (bool, error)

	// DeleteUsersOlderThan bulk-removes records created strictly before
	// cutoff and returns the number removed
	DeleteUsersOlderThan(cutoff time.Time) (int64, error)
}
