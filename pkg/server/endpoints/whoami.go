package endpoints

import (
	"net/http"

	"github.com/keltoummalouki/talenthub/pkg/identity"
	"github.com/keltoummalouki/talenthub/pkg/server"
)

// WhoamiResponse represents the response from the /whoami endpoint
type WhoamiResponse struct {
	SubjectID string `json:"subjectId"`
	Username  string `json:"username"`
	Role      string `json:"role"`
}

// RegisterWhoamiEndpoint registers the GET /whoami endpoint
func RegisterWhoamiEndpoint(s *server.Server) {
	s.Router.HandleFunc("/whoami", handleWhoami()).Methods("GET")
}

func handleWhoami() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := identity.Require(r.Context())
		if err != nil {
			respondWithError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, WhoamiResponse{
			SubjectID: id.SubjectID,
			Username:  id.Username,
			Role:      id.Role,
		})
	}
}
