package store

import (
	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/pagination"
)

// ProjectFilter narrows project listings. Zero-value fields are ignored.
// Tags and Technologies match records sharing at least one element.
type ProjectFilter struct {
	Tags         []string
	Technologies []string
	Status       string
}

// ProjectsStore abstracts project storage operations
type ProjectsStore interface {
	// ListProjects returns up to limit projects matching the filter,
	// ordered by start date descending (ties broken by id ascending),
	// continuing strictly after the cursor position when one is given.
	// A limit of zero or less lifts the cap.
	ListProjects(filter ProjectFilter, after *pagination.Cursor, limit int) ([]model.Project, error)

	// CountProjects returns the number of projects matching the filter.
	CountProjects(filter ProjectFilter) (int, error)

	// FetchProject retrieves a project by id.
	// Returns ErrNotFound if it doesn't exist.
	FetchProject(id string) (*model.Project, error)

	// CreateProject persists a new project.
	CreateProject(project *model.Project) error

	// UpdateProject replaces an existing project's fields.
	// Returns ErrNotFound if it doesn't exist.
	UpdateProject(project *model.Project) error

	// DeleteProject removes a project by id.
	// Returns ErrNotFound if it doesn't exist.
	DeleteProject(id string) error
}
