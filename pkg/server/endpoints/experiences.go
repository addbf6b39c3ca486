package endpoints

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/keltoummalouki/talenthub/pkg/api"
	"github.com/keltoummalouki/talenthub/pkg/audit"
	"github.com/keltoummalouki/talenthub/pkg/identity"
	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
	"github.com/keltoummalouki/talenthub/pkg/validate"
)

// RegisterExperiencesEndpoints registers the /experiences endpoints
func RegisterExperiencesEndpoints(s *server.Server) {
	s.Router.HandleFunc("/experiences", handleListExperiences(s.ExperiencesStore)).Methods("GET")
	s.Router.HandleFunc("/experiences", handleCreateExperience(s.ExperiencesStore)).Methods("POST")
	s.Router.HandleFunc("/experiences/{id}", handleUpdateExperience(s.ExperiencesStore)).Methods("PUT")
	s.Router.HandleFunc("/experiences/{id}", handleDeleteExperience(s.ExperiencesStore)).Methods("DELETE")
}

func handleListExperiences(experiences store.ExperiencesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listed, err := experiences.ListExperiences()
		if err != nil {
			respondWithError(w, err)
			return
		}
		if listed == nil {
			listed = []model.Experience{}
		}
		respondWithJSON(w, http.StatusOK, listed)
	}
}

func experienceFromInput(in *validate.ExperienceInput) model.Experience {
	startDate, _ := validate.ParseDate(in.StartDate)
	experience := model.Experience{
		Position:    in.Position,
		Company:     in.Company,
		Description: in.Description,
		StartDate:   startDate,
		Current:     in.Current,
		Skills:      in.Skills,
		Location:    in.Location,
	}
	if in.EndDate != "" {
		endDate, _ := validate.ParseDate(in.EndDate)
		experience.EndDate = &endDate
	}
	return experience
}

func handleCreateExperience(experiences store.ExperiencesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}

		var input validate.ExperienceInput
		if err := decodeJSON(r, &input); err != nil {
			respondWithError(w, err)
			return
		}
		if err := validate.Experience(&input); err != nil {
			respondWithError(w, err)
			return
		}

		experience := experienceFromInput(&input)
		if err := experiences.CreateExperience(&experience); err != nil {
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:   id.Username,
			ClientIP:   clientIP(r),
			Resource:   "experience",
			ResourceID: experience.ID,
			Operation:  "create",
			Success:    true,
		})

		respondWithJSON(w, http.StatusCreated, experience)
	}
}

func handleUpdateExperience(experiences store.ExperiencesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}
		experienceID := mux.Vars(r)["id"]

		var input validate.ExperienceInput
		if err := decodeJSON(r, &input); err != nil {
			respondWithError(w, err)
			return
		}
		if err := validate.Experience(&input); err != nil {
			respondWithError(w, err)
			return
		}

		experience := experienceFromInput(&input)
		experience.ID = experienceID
		if err := experiences.UpdateExperience(&experience); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, api.NotFound("experience not found"))
				return
			}
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:   id.Username,
			ClientIP:   clientIP(r),
			Resource:   "experience",
			ResourceID: experienceID,
			Operation:  "update",
			Success:    true,
		})

		respondWithJSON(w, http.StatusOK, experience)
	}
}

func handleDeleteExperience(experiences store.ExperiencesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}
		experienceID := mux.Vars(r)["id"]

		if err := experiences.DeleteExperience(experienceID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, api.NotFound("experience not found"))
				return
			}
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:   id.Username,
			ClientIP:   clientIP(r),
			Resource:   "experience",
			ResourceID: experienceID,
			Operation:  "delete",
			Success:    true,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
