package gorm

import (
	"gorm.io/gorm"

	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
)

// Ensure SkillsStore implements store.SkillsStore
var _ store.SkillsStore = (*SkillsStore)(nil)

// SkillsStore implements store.SkillsStore using GORM
type SkillsStore struct {
	db *gorm.DB
}

// NewSkillsStore creates a new SkillsStore
func NewSkillsStore(db *gorm.DB) *SkillsStore {
	return &SkillsStore{db: db}
}

// skillLevelRank orders proficiency levels strongest first for listings.
const skillLevelRank = `CASE level
	WHEN 'expert' THEN 0
	WHEN 'advanced' THEN 1
	WHEN 'intermediate' THEN 2
	ELSE 3
END`

// ListSkills returns all skills grouped by category, strongest first.
func (s *SkillsStore) ListSkills() ([]model.Skill, error) {
	var skills []model.Skill
	err := s.db.
		Order("category ASC").
		Order(skillLevelRank).
		Order("name ASC").
		Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}

// FetchSkill retrieves a skill by id.
func (s *SkillsStore) FetchSkill(id string) (*model.Skill, error) {
	var skill model.Skill
	tx := s.db.First(&skill, "id = ?", id)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &skill, nil
}

// CreateSkill persists a new skill.
func (s *SkillsStore) CreateSkill(skill *model.Skill) error {
	return s.db.Create(skill).Error
}

// UpdateSkill replaces an existing skill's fields.
func (s *SkillsStore) UpdateSkill(skill *model.Skill) error {
	var existing model.Skill
	tx := s.db.First(&existing, "id = ?", skill.ID)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return store.ErrNotFound
		}
		return tx.Error
	}

	skill.CreatedAt = existing.CreatedAt
	return s.db.Save(skill).Error
}

// DeleteSkill removes a skill by id.
func (s *SkillsStore) DeleteSkill(id string) error {
	tx := s.db.Delete(&model.Skill{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
