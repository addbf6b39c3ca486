package endpoints

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/keltoummalouki/talenthub/pkg/api"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError writes any error in the API error shape. Errors without
// a code become INTERNAL_SERVER_ERROR so storage details never leak out.
func respondWithError(w http.ResponseWriter, err error) {
	apiErr := api.From(err)
	respondWithJSON(w, apiErr.HTTPStatus(), apiErr)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return api.BadUserInput("malformed request body")
	}
	return nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
