package gorm

import (
	"gorm.io/gorm"

	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
)

// Ensure ExperiencesStore implements store.ExperiencesStore
var _ store.ExperiencesStore = (*ExperiencesStore)(nil)

// ExperiencesStore implements store.ExperiencesStore using GORM
type ExperiencesStore struct {
	db *gorm.DB
}

// NewExperiencesStore creates a new ExperiencesStore
func NewExperiencesStore(db *gorm.DB) *ExperiencesStore {
	return &ExperiencesStore{db: db}
}

// ListExperiences returns all experiences, most recent first.
func (s *ExperiencesStore) ListExperiences() ([]model.Experience, error) {
	var experiences []model.Experience
	err := s.db.Order("start_date DESC, id ASC").Find(&experiences).Error
	if err != nil {
		return nil, err
	}
	return experiences, nil
}

// FetchExperience retrieves an experience by id.
func (s *ExperiencesStore) FetchExperience(id string) (*model.Experience, error) {
	var experience model.Experience
	tx := s.db.First(&experience, "id = ?", id)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &experience, nil
}

// CreateExperience persists a new experience.
func (s *ExperiencesStore) CreateExperience(experience *model.Experience) error {
	return s.db.Create(experience).Error
}

// UpdateExperience replaces an existing experience's fields.
func (s *ExperiencesStore) UpdateExperience(experience *model.Experience) error {
	var existing model.Experience
	tx := s.db.First(&existing, "id = ?", experience.ID)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return store.ErrNotFound
		}
		return tx.Error
	}

	experience.CreatedAt = existing.CreatedAt
	return s.db.Save(experience).Error
}

// DeleteExperience removes an experience by id.
func (s *ExperiencesStore) DeleteExperience(id string) error {
	tx := s.db.Delete(&model.Experience{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
