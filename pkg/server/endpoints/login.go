package endpoints

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/keltoummalouki/talenthub/pkg/api"
	"github.com/keltoummalouki/talenthub/pkg/audit"
	"github.com/keltoummalouki/talenthub/pkg/server"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
	"github.com/keltoummalouki/talenthub/pkg/token"
)

// LoginRequest is the /authn/login payload. Login matches either the
// username or the email of the account.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginUser is the account summary returned alongside a fresh credential.
type LoginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// LoginResponse carries the signed credential and the account it names.
type LoginResponse struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// RegisterLoginEndpoint registers the POST /authn/login endpoint
func RegisterLoginEndpoint(s *server.Server) {
	s.Router.HandleFunc("/authn/login", handleLogin(s)).Methods("POST")
}

func handleLogin(s *server.Server) http.HandlerFunc {
	users := s.UsersStore
	codec := s.Codec

	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeJSON(r, &req); err != nil {
			respondWithError(w, err)
			return
		}

		req.Login = strings.TrimSpace(req.Login)
		if req.Login == "" || req.Password == "" {
			respondWithError(w, api.BadUserInput("login and password are required"))
			return
		}

		user, err := users.FetchUserByLogin(req.Login)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Same response as a wrong password, so a caller can't
				// probe which logins exist.
				audit.Log(audit.LoginEvent{
					Login:        req.Login,
					ClientIP:     clientIP(r),
					Success:      false,
					ErrorMessage: "unknown login",
				})
				respondWithError(w, api.Unauthenticated("invalid credentials"))
				return
			}
			respondWithError(w, err)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
			audit.Log(audit.LoginEvent{
				Login:        req.Login,
				ClientIP:     clientIP(r),
				Success:      false,
				ErrorMessage: "wrong password",
			})
			respondWithError(w, api.Unauthenticated("invalid credentials"))
			return
		}

		signed, err := codec.Issue(token.Claims{
			SubjectID: user.ID,
			Username:  user.Username,
			Role:      user.Role,
		})
		if err != nil {
			respondWithError(w, err)
			return
		}

		audit.Log(audit.LoginEvent{
			Login:    req.Login,
			ClientIP: clientIP(r),
			Success:  true,
		})

		respondWithJSON(w, http.StatusOK, LoginResponse{
			Token: signed,
			User: LoginUser{
				ID:       user.ID,
				Username: user.Username,
				Email:    user.Email,
				Role:     user.Role,
			},
		})
	}
}
