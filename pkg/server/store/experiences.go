package store

import "github.com/keltoummalouki/talenthub/pkg/model"

// ExperiencesStore abstracts work-experience storage operations
type ExperiencesStore interface {
	// ListExperiences returns all experiences, most recent first.
	ListExperiences() ([]model.Experience, error)

	// FetchExperience retrieves an experience by id.
	// Returns ErrNotFound if it doesn't exist.
	FetchExperience(id string) (*model.Experience, error)

	// CreateExperience persists a new experience.
	CreateExperience(experience *model.Experience) error

	// UpdateExperience replaces an existing experience's fields.
	// Returns ErrNotFound if it doesn't exist.
	UpdateExperience(experience *model.Experience) error

	// DeleteExperience removes an experience by id.
	// Returns ErrNotFound if it doesn't exist.
	DeleteExperience(id string) error
}
