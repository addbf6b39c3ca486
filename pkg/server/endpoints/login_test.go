package endpoints

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/keltoummalouki/talenthub/pkg/api"
	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
)

func TestLogin(t *testing.T) {
	srv, stores := newTestServer()
	RegisterLoginEndpoint(srv)
	RegisterWhoamiEndpoint(srv)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		ID:           "user-1",
		Username:     "keltoum",
		Email:        "keltoum@example.com",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	stores.Users.On("FetchUserByLogin", "keltoum").Return(user, nil)
	stores.Users.On("FetchUserByLogin", "keltoum@example.com").Return(user, nil)
	stores.Users.On("FetchUserByLogin", "nobody").Return(nil, store.ErrNotFound)

	t.Run("valid credentials issue a usable token", func(t *testing.T) {
		w := doRequest(srv, "POST", "/authn/login", "", `{"login":"keltoum","password":"s3cret"}`)

		require.Equal(t, http.StatusOK, w.Code)

		var response LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, "keltoum", response.User.Username)
		assert.Equal(t, "admin", response.User.Role)

		// The issued token authenticates follow-up requests.
		whoami := doRequest(srv, "GET", "/whoami", response.Token, "")
		require.Equal(t, http.StatusOK, whoami.Code)

		var identity WhoamiResponse
		require.NoError(t, json.Unmarshal(whoami.Body.Bytes(), &identity))
		assert.Equal(t, "user-1", identity.SubjectID)
	})

	t.Run("email works as login", func(t *testing.T) {
		w := doRequest(srv, "POST", "/authn/login", "", `{"login":"keltoum@example.com","password":"s3cret"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doRequest(srv, "POST", "/authn/login", "", `{"login":"keltoum","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, api.CodeUnauthenticated, decodeError(t, w).Extensions.Code)
	})

	t.Run("unknown login gets the same error as a wrong password", func(t *testing.T) {
		w := doRequest(srv, "POST", "/authn/login", "", `{"login":"nobody","password":"s3cret"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid credentials", decodeError(t, w).Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doRequest(srv, "POST", "/authn/login", "", `{"login":"  "}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, api.CodeBadUserInput, decodeError(t, w).Extensions.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doRequest(srv, "POST", "/authn/login", "", `{not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
