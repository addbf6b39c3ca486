package store

import "github.com/keltoummalouki/talenthub/pkg/model"

// ProfileStore abstracts profile storage operations.
// The profile is a singleton: at most one record exists.
type ProfileStore interface {
	// FetchProfile retrieves the profile.
	// Returns ErrNotFound when none has been created yet.
	FetchProfile() (*model.Profile, error)

	// SaveProfile creates the profile on first write and replaces it
	// on subsequent writes.
	SaveProfile(profile *model.Profile) error
}
