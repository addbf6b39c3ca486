package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/keltoummalouki/talenthub/pkg/api"
	"github.com/keltoummalouki/talenthub/pkg/audit"
	"github.com/keltoummalouki/talenthub/pkg/config"
	"github.com/keltoummalouki/talenthub/pkg/identity"
	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/pagination"
	"github.com/keltoummalouki/talenthub/pkg/server"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
	"github.com/keltoummalouki/talenthub/pkg/validate"
)

// RegisterProjectsEndpoints registers the /projects endpoints
func RegisterProjectsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/projects", handleListProjects(s.ProjectsStore, s.Config)).Methods("GET")
	s.Router.HandleFunc("/projects", handleCreateProject(s.ProjectsStore)).Methods("POST")
	s.Router.HandleFunc("/projects/{id}", handleGetProject(s.ProjectsStore)).Methods("GET")
	s.Router.HandleFunc("/projects/{id}", handleUpdateProject(s.ProjectsStore)).Methods("PUT")
	s.Router.HandleFunc("/projects/{id}", handleDeleteProject(s.ProjectsStore)).Methods("DELETE")
}

// pageParams reads the first/after query parameters. Out-of-range sizes are
// rejected, never clamped.
func pageParams(r *http.Request, cfg *config.Config) (int, *pagination.Cursor, error) {
	first := cfg.DefaultPageSize
	if raw := r.URL.Query().Get("first"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, nil, api.BadUserInput("first must be an integer")
		}
		first = n
	}
	if first <= 0 || first > cfg.MaxPageSize {
		return 0, nil, api.BadUserInput(fmt.Sprintf("first must be between 1 and %d", cfg.MaxPageSize))
	}

	var after *pagination.Cursor
	if raw := r.URL.Query().Get("after"); raw != "" {
		cursor, err := pagination.Decode(raw)
		if err != nil {
			return 0, nil, api.BadUserInput("malformed cursor")
		}
		after = &cursor
	}

	return first, after, nil
}

// csvParam collects a query parameter's values, splitting each on commas,
// so both ?tags=a,b and ?tags=a&tags=b work.
func csvParam(r *http.Request, name string) []string {
	var values []string
	for _, raw := range r.URL.Query()[name] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

func projectFilter(r *http.Request) (store.ProjectFilter, error) {
	filter := store.ProjectFilter{
		Tags:         csvParam(r, "tags"),
		Technologies: csvParam(r, "technologies"),
		Status:       r.URL.Query().Get("status"),
	}

	if filter.Status != "" {
		valid := false
		for _, s := range model.ProjectStatuses {
			if filter.Status == s {
				valid = true
				break
			}
		}
		if !valid {
			return store.ProjectFilter{}, api.BadUserInput(
				fmt.Sprintf("status must be one of: %s", strings.Join(model.ProjectStatuses, ", ")))
		}
	}

	return filter, nil
}

func handleListProjects(projects store.ProjectsStore, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		first, after, err := pageParams(r, cfg)
		if err != nil {
			respondWithError(w, err)
			return
		}

		filter, err := projectFilter(r)
		if err != nil {
			respondWithError(w, err)
			return
		}

		connection, err := pagination.Paginate(
			first,
			after,
			func(after *pagination.Cursor, limit int) ([]model.Project, error) {
				return projects.ListProjects(filter, after, limit)
			},
			func() (int, error) {
				return projects.CountProjects(filter)
			},
			func(p model.Project) pagination.Cursor {
				return pagination.Cursor{StartDate: p.StartDate, ID: p.ID}
			},
		)
		if err != nil {
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, connection)
	}
}

func handleGetProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		project, err := projects.FetchProject(id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, api.NotFound("project not found"))
				return
			}
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, project)
	}
}

// projectFromInput maps a validated payload onto a record. Dates parse
// cleanly here because validation already checked them.
func projectFromInput(in *validate.ProjectInput) model.Project {
	startDate, _ := validate.ParseDate(in.StartDate)
	project := model.Project{
		Title:        in.Title,
		Description:  in.Description,
		Technologies: in.Technologies,
		DemoURL:      in.DemoURL,
		GitHubURL:    in.GitHubURL,
		Images:       in.Images,
		StartDate:    startDate,
		Status:       in.Status,
		Tags:         in.Tags,
	}
	if in.EndDate != "" {
		endDate, _ := validate.ParseDate(in.EndDate)
		project.EndDate = &endDate
	}
	return project
}

func handleCreateProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}

		var input validate.ProjectInput
		if err := decodeJSON(r, &input); err != nil {
			respondWithError(w, err)
			return
		}
		if err := validate.Project(&input); err != nil {
			respondWithError(w, err)
			return
		}

		project := projectFromInput(&input)
		if err := projects.CreateProject(&project); err != nil {
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:   id.Username,
			ClientIP:   clientIP(r),
			Resource:   "project",
			ResourceID: project.ID,
			Operation:  "create",
			Success:    true,
		})

		respondWithJSON(w, http.StatusCreated, project)
	}
}

func handleUpdateProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}
		projectID := mux.Vars(r)["id"]

		var input validate.ProjectInput
		if err := decodeJSON(r, &input); err != nil {
			respondWithError(w, err)
			return
		}
		if err := validate.Project(&input); err != nil {
			respondWithError(w, err)
			return
		}

		project := projectFromInput(&input)
		project.ID = projectID
		if err := projects.UpdateProject(&project); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				audit.Log(audit.MutationEvent{
					Username:     id.Username,
					ClientIP:     clientIP(r),
					Resource:     "project",
					ResourceID:   projectID,
					Operation:    "update",
					Success:      false,
					ErrorMessage: "not found",
				})
				respondWithError(w, api.NotFound("project not found"))
				return
			}
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:   id.Username,
			ClientIP:   clientIP(r),
			Resource:   "project",
			ResourceID: projectID,
			Operation:  "update",
			Success:    true,
		})

		respondWithJSON(w, http.StatusOK, project)
	}
}

func handleDeleteProject(projects store.ProjectsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}
		projectID := mux.Vars(r)["id"]

		if err := projects.DeleteProject(projectID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				audit.Log(audit.MutationEvent{
					Username:     id.Username,
					ClientIP:     clientIP(r),
					Resource:     "project",
					ResourceID:   projectID,
					Operation:    "delete",
					Success:      false,
					ErrorMessage: "not found",
				})
				respondWithError(w, api.NotFound("project not found"))
				return
			}
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:   id.Username,
			ClientIP:   clientIP(r),
			Resource:   "project",
			ResourceID: projectID,
			Operation:  "delete",
			Success:    true,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
