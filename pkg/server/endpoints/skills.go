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

// RegisterSkillsEndpoints registers the /skills endpoints
func RegisterSkillsEndpoints(s *server.Server) {
	s.Router.HandleFunc("/skills", handleListSkills(s.SkillsStore)).Methods("GET")
	s.Router.HandleFunc("/skills", handleCreateSkill(s.SkillsStore)).Methods("POST")
	s.Router.HandleFunc("/skills/{id}", handleUpdateSkill(s.SkillsStore)).Methods("PUT")
	s.Router.HandleFunc("/skills/{id}", handleDeleteSkill(s.SkillsStore)).Methods("DELETE")
}

func handleListSkills(skills store.SkillsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listed, err := skills.ListSkills()
		if err != nil {
			respondWithError(w, err)
			return
		}
		if listed == nil {
			listed = []model.Skill{}
		}
		respondWithJSON(w, http.StatusOK, listed)
	}
}

func skillFromInput(in *validate.SkillInput) model.Skill {
	return model.Skill{
		Name:     in.Name,
		Level:    in.Level,
		Category: in.Category,
		Icon:     in.Icon,
	}
}

func handleCreateSkill(skills store.SkillsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}

		var input validate.SkillInput
		if err := decodeJSON(r, &input); err != nil {
			respondWithError(w, err)
			return
		}
		if err := validate.Skill(&input); err != nil {
			respondWithError(w, err)
			return
		}

		skill := skillFromInput(&input)
		if err := skills.CreateSkill(&skill); err != nil {
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:   id.Username,
			ClientIP:   clientIP(r),
			Resource:   "skill",
			ResourceID: skill.ID,
			Operation:  "create",
			Success:    true,
		})

		respondWithJSON(w, http.StatusCreated, skill)
	}
}

func handleUpdateSkill(skills store.SkillsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}
		skillID := mux.Vars(r)["id"]

		var input validate.SkillInput
		if err := decodeJSON(r, &input); err != nil {
			respondWithError(w, err)
			return
		}
		if err := validate.Skill(&input); err != nil {
			respondWithError(w, err)
			return
		}

		skill := skillFromInput(&input)
		skill.ID = skillID
		if err := skills.UpdateSkill(&skill); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, api.NotFound("skill not found"))
				return
			}
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:   id.Username,
			ClientIP:   clientIP(r),
			Resource:   "skill",
			ResourceID: skillID,
			Operation:  "update",
			Success:    true,
		})

		respondWithJSON(w, http.StatusOK, skill)
	}
}

func handleDeleteSkill(skills store.SkillsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}
		skillID := mux.Vars(r)["id"]

		if err := skills.DeleteSkill(skillID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, api.NotFound("skill not found"))
				return
			}
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:   id.Username,
			ClientIP:   clientIP(r),
			Resource:   "skill",
			ResourceID: skillID,
			Operation:  "delete",
			Success:    true,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
