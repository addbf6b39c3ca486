package endpoints

import (
	"errors"
	"net/http"

	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
)

// PortfolioResponse aggregates the whole public portfolio in one payload.
// Profile is null until one has been created.
type PortfolioResponse struct {
	Profile     *model.Profile     `json:"profile"`
	Projects    []model.Project    `json:"projects"`
	Skills      []model.Skill      `json:"skills"`
	Experiences []model.Experience `json:"experiences"`
}

// RegisterPortfolioEndpoint registers the GET /portfolio endpoint
func RegisterPortfolioEndpoint(s *server.Server) {
	s.Router.HandleFunc("/portfolio", handleGetPortfolio(s)).Methods("GET")
}

func handleGetPortfolio(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := PortfolioResponse{
			Projects:    []model.Project{},
			Skills:      []model.Skill{},
			Experiences: []model.Experience{},
		}

		profile, err := s.ProfileStore.FetchProfile()
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			respondWithError(w, err)
			return
		}
		response.Profile = profile

		// The aggregate is the whole portfolio, not a page.
		projects, err := s.ProjectsStore.ListProjects(store.ProjectFilter{}, nil, 0)
		if err != nil {
			respondWithError(w, err)
			return
		}
		if projects != nil {
			response.Projects = projects
		}

		skills, err := s.SkillsStore.ListSkills()
		if err != nil {
			respondWithError(w, err)
			return
		}
		if skills != nil {
			response.Skills = skills
		}

		experiences, err := s.ExperiencesStore.ListExperiences()
		if err != nil {
			respondWithError(w, err)
			return
		}
		if experiences != nil {
			response.Experiences = experiences
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}
