package endpoints

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/keltoummalouki/talenthub/pkg/api"
	"github.com/keltoummalouki/talenthub/pkg/config"
	"github.com/keltoummalouki/talenthub/pkg/identity"
	"github.com/keltoummalouki/talenthub/pkg/server"
	"github.com/keltoummalouki/talenthub/pkg/server/middleware"
	"github.com/keltoummalouki/talenthub/pkg/token"
)

type testStores struct {
	Users       *MockUsersStore
	Profile     *MockProfileStore
	Projects    *MockProjectsStore
	Skills      *MockSkillsStore
	Experiences *MockExperiencesStore
	Health      *MockHealthStore
}

// newTestServer builds a server over mock stores with the same identity
// middleware the real router uses.
func newTestServer() (*server.Server, *testStores) {
	cfg := &config.Config{
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}
	codec := token.NewCodec([]byte("test-secret"), time.Hour)
	resolver := identity.NewResolver(codec)

	router := mux.NewRouter()
	router.Use(middleware.Identity(resolver))

	stores := &testStores{
		Users:       NewMockUsersStore(),
		Profile:     NewMockProfileStore(),
		Projects:    NewMockProjectsStore(),
		Skills:      NewMockSkillsStore(),
		Experiences: NewMockExperiencesStore(),
		Health:      NewMockHealthStore(),
	}

	srv := &server.Server{
		Router:   router,
		Config:   cfg,
		Codec:    codec,
		Resolver: resolver,

		UsersStore:       stores.Users,
		ProfileStore:     stores.Profile,
		ProjectsStore:    stores.Projects,
		SkillsStore:      stores.Skills,
		ExperiencesStore: stores.Experiences,
		HealthStore:      stores.Health,
	}
	return srv, stores
}

func adminToken(t *testing.T, srv *server.Server) string {
	t.Helper()
	signed, err := srv.Codec.Issue(token.Claims{
		SubjectID: "user-1",
		Username:  "keltoum",
		Role:      "admin",
	})
	require.NoError(t, err)
	return signed
}

// unknownRoleToken signs a valid token whose role grants no privileges.
func unknownRoleToken(t *testing.T, srv *server.Server) string {
	t.Helper()
	signed, err := srv.Codec.Issue(token.Claims{
		SubjectID: "user-2",
		Username:  "visitor",
		Role:      "editor",
	})
	require.NoError(t, err)
	return signed
}

func doRequest(srv *server.Server, method, path, bearer, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	srv.Router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *api.Error {
	t.Helper()
	var apiErr api.Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return &apiErr
}
