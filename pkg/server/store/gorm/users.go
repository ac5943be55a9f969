package gorm

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/davidosoro/userhub/pkg/model"
	"github.com/davidosoro/userhub/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser appends a new user record with a server-assigned UUID and
// creation timestamp
func (s *UsersStore) CreateUser(user *model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	tx := s.db.Create(user)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return user, nil
}

// FindUserByEmail returns the earliest-created record with the given email
func (s *UsersStore) FindUserByEmail(email string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("email = ?", email).Order("created_at").First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// ListUsers returns all user records ordered by creation time
func (s *UsersStore) ListUsers() ([]model.User, error) {
	var users []model.User
	tx := s.db.Order("created_at").Find(&users)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return users, nil
}

// DeleteUserByID removes a record by ID, reporting whether a row was removed
func (s *UsersStore) DeleteUserByID(id string) (bool, error) {
	tx := s.db.Where("id = ?", id).Delete(&model.User{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// DeleteUsersOlderThan bulk-removes records created strictly before cutoff
func (s *UsersStore) DeleteUsersOlderThan(cutoff time.Time) (int64, error) {
	tx := s.db.Where("created_at < ?", cutoff).Delete(&model.User{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
