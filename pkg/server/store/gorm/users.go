package gorm

import (
	"gorm.io/gorm"

	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
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

// FetchUserByLogin retrieves a user whose username or email matches the login.
func (s *UsersStore) FetchUserByLogin(login string) (*model.User, error) {
	var user model.User
	tx := s.db.Where("username = ? OR email = ?", login, login).First(&user)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &user, nil
}

// CreateUser persists a new account.
func (s *UsersStore) CreateUser(user *model.User) error {
	return s.db.Create(user).Error
}

// UpdateUserPassword replaces the password hash for the named account.
func (s *UsersStore) UpdateUserPassword(username string, passwordHash string) error {
	tx := s.db.Model(&model.User{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
