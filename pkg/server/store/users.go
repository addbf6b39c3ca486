package store

import "github.com/keltoummalouki/talenthub/pkg/model"

// UsersStore abstracts account storage operations
type UsersStore interface {
	// FetchUserByLogin retrieves a user whose username or email matches
	// the given login. Returns ErrNotFound if no account matches.
	FetchUserByLogin(login string) (*model.User, error)

	// CreateUser persists a new account.
	CreateUser(user *model.User) error

	// UpdateUserPassword replaces the password hash for the named account.
	// Returns ErrNotFound if the account doesn't exist.
	UpdateUserPassword(username string, passwordHash string) error
}
