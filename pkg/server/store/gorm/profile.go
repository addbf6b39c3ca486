package gorm

import (
	"gorm.io/gorm"

	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
)

// Ensure ProfileStore implements store.ProfileStore
var _ store.ProfileStore = (*ProfileStore)(nil)

// ProfileStore implements store.ProfileStore using GORM
type ProfileStore struct {
	db *gorm.DB
}

// NewProfileStore creates a new ProfileStore
func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// FetchProfile retrieves the singleton profile record.
func (s *ProfileStore) FetchProfile() (*model.Profile, error) {
	var profile model.Profile
	tx := s.db.First(&profile)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &profile, nil
}

// SaveProfile writes the whole record. A record without an id is created,
// one with an id replaces the existing row.
func (s *ProfileStore) SaveProfile(profile *model.Profile) error {
	if profile.ID == "" {
		return s.db.Create(profile).Error
	}
	return s.db.Save(profile).Error
}
