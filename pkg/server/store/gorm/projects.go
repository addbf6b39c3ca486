package gorm

import (
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/pagination"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
)

// Ensure ProjectsStore implements store.ProjectsStore
var _ store.ProjectsStore = (*ProjectsStore)(nil)

// ProjectsStore implements store.ProjectsStore using GORM
type ProjectsStore struct {
	db *gorm.DB
}

// NewProjectsStore creates a new ProjectsStore
func NewProjectsStore(db *gorm.DB) *ProjectsStore {
	return &ProjectsStore{db: db}
}

// scoped applies the filter to a projects query. Array filters use the
// Postgres overlap operator: a record matches if it shares at least one
// element with the requested values.
func (s *ProjectsStore) scoped(filter store.ProjectFilter) *gorm.DB {
	tx := s.db.Model(&model.Project{})
	if len(filter.Tags) > 0 {
		tx = tx.Where("tags && ?", pq.Array(filter.Tags))
	}
	if len(filter.Technologies) > 0 {
		tx = tx.Where("technologies && ?", pq.Array(filter.Technologies))
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	return tx
}

// ListProjects returns up to limit projects matching the filter, ordered by
// start date descending with id ascending as tiebreak. The cursor predicate
// mirrors that sort order so pages are contiguous and disjoint. A limit of
// zero or less returns every matching project.
func (s *ProjectsStore) ListProjects(filter store.ProjectFilter, after *pagination.Cursor, limit int) ([]model.Project, error) {
	tx := s.scoped(filter)
	if after != nil {
		tx = tx.Where("(start_date < ?) OR (start_date = ? AND id > ?)",
			after.StartDate, after.StartDate, after.ID)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var projects []model.Project
	err := tx.Order("start_date DESC, id ASC").Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// CountProjects returns the number of projects matching the filter.
func (s *ProjectsStore) CountProjects(filter store.ProjectFilter) (int, error) {
	var count int64
	if err := s.scoped(filter).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

// FetchProject retrieves a project by id.
func (s *ProjectsStore) FetchProject(id string) (*model.Project, error) {
	var project model.Project
	tx := s.db.First(&project, "id = ?", id)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, store.ErrNotFound
		}
		return nil, tx.Error
	}
	return &project, nil
}

// CreateProject persists a new project.
func (s *ProjectsStore) CreateProject(project *model.Project) error {
	return s.db.Create(project).Error
}

// UpdateProject replaces an existing project's fields.
func (s *ProjectsStore) UpdateProject(project *model.Project) error {
	var existing model.Project
	tx := s.db.First(&existing, "id = ?", project.ID)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return store.ErrNotFound
		}
		return tx.Error
	}

	project.CreatedAt = existing.CreatedAt
	return s.db.Save(project).Error
}

// DeleteProject removes a project by id.
func (s *ProjectsStore) DeleteProject(id string) error {
	tx := s.db.Delete(&model.Project{}, "id = ?", id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
