package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server/store"
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

// CreateUser persists a new user. The username unique constraint is the
// authority on conflicts; there is no separate existence pre-check to race
// against.
func (s *UsersStore) CreateUser(newUser store.NewUser) (*model.User, error) {
	user := model.User{
		Username: newUser.Username,
		Password: newUser.PasswordHash,
		Role:     newUser.Role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err, "") {
			return nil, store.ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername retrieves a user by username.
func (s *UsersStore) FindByUsername(username string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("username = ?", username).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// FindByID retrieves a user by id.
func (s *UsersStore) FindByID(id uint) (*model.User, error) {
	var user model.User
	tx := s.db.Where("id = ?", id).First(&user)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrUserNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}
