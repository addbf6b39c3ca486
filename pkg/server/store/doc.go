// Package store provides storage abstractions for the server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints to be decoupled from the specific database implementation.
// This enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - ProjectsStore: project listing (paginated, filtered) and CRUD
//   - SkillsStore: skill listing and CRUD
//   - ExperiencesStore: experience listing and CRUD
//   - ProfileStore: the site owner's single profile record
//   - UsersStore: account lookup and credential management
//
// # Usage
//
//	projects := gorm.NewProjectsStore(db)
//	project, err := projects.FetchProject(id)
//	if err != nil {
//	    if errors.Is(err, store.ErrNotFound) {
//	        // Handle not found
//	    }
//	}
package store
