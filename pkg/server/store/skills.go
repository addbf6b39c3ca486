package store

import "github.com/keltoummalouki/talenthub/pkg/model"

// SkillsStore abstracts skill storage operations
type SkillsStore interface {
	// ListSkills returns all skills grouped by category, strongest
	// proficiency first within each category, names breaking ties.
	ListSkills() ([]model.Skill, error)

	// FetchSkill retrieves a skill by id.
	// Returns ErrNotFound if it doesn't exist.
	FetchSkill(id string) (*model.Skill, error)

	// CreateSkill persists a new skill.
	CreateSkill(skill *model.Skill) error

	// UpdateSkill replaces an existing skill's fields.
	// Returns ErrNotFound if it doesn't exist.
	UpdateSkill(skill *model.Skill) error

	// DeleteSkill removes a skill by id.
	// Returns ErrNotFound if it doesn't exist.
	DeleteSkill(id string) error
}
