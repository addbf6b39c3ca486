package endpoints

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/yuin/goldmark"

	"github.com/keltoummalouki/talenthub/pkg/api"
	"github.com/keltoummalouki/talenthub/pkg/audit"
	"github.com/keltoummalouki/talenthub/pkg/identity"
	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
	"github.com/keltoummalouki/talenthub/pkg/validate"
)

// ProfileResponse is the profile record, optionally carrying the biography
// rendered to HTML when ?render=html is requested.
type ProfileResponse struct {
	model.Profile
	BiographyHTML string `json:"biographyHtml,omitempty"`
}

// RegisterProfileEndpoints registers the /profile endpoints
func RegisterProfileEndpoints(s *server.Server) {
	s.Router.HandleFunc("/profile", handleGetProfile(s.ProfileStore)).Methods("GET")
	s.Router.HandleFunc("/profile", handleUpdateProfile(s.ProfileStore)).Methods("PUT")
}

func handleGetProfile(profiles store.ProfileStore) http.HandlerFunc {
	markdown := goldmark.New()

	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := profiles.FetchProfile()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, api.NotFound("profile not found"))
				return
			}
			respondWithError(w, err)
			return
		}

		response := ProfileResponse{Profile: *profile}
		if r.URL.Query().Get("render") == "html" {
			var buf bytes.Buffer
			if err := markdown.Convert([]byte(profile.Biography), &buf); err != nil {
				respondWithError(w, err)
				return
			}
			response.BiographyHTML = buf.String()
		}

		respondWithJSON(w, http.StatusOK, response)
	}
}

func handleUpdateProfile(profiles store.ProfileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.RequireRole(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}

		var input validate.ProfileInput
		if err := decodeJSON(r, &input); err != nil {
			respondWithError(w, err)
			return
		}
		if err := validate.Profile(&input); err != nil {
			respondWithError(w, err)
			return
		}

		// First write starts from an empty record; later writes merge the
		// patch into the stored one.
		current := model.Profile{}
		if existing, err := profiles.FetchProfile(); err == nil {
			current = *existing
		} else if !errors.Is(err, store.ErrNotFound) {
			respondWithError(w, err)
			return
		}

		merged := input.Apply(current)
		if err := profiles.SaveProfile(&merged); err != nil {
			audit.Log(audit.MutationEvent{
				Username:     id.Username,
				ClientIP:     clientIP(r),
				Resource:     "profile",
				Operation:    "update",
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithError(w, err)
			return
		}

		audit.Log(audit.MutationEvent{
			Username:  id.Username,
			ClientIP:  clientIP(r),
			Resource:  "profile",
			Operation: "update",
			Success:   true,
		})

		respondWithJSON(w, http.StatusOK, merged)
	}
}
