package endpoints

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keltoummalouki/talenthub/pkg/api"
	"github.com/keltoummalouki/talenthub/pkg/model"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
)

func TestGetProfile(t *testing.T) {
	srv, stores := newTestServer()
	RegisterProfileEndpoints(srv)

	stores.Profile.On("FetchProfile").Return(&model.Profile{
		ID:        "profile-1",
		FirstName: "Keltoum",
		LastName:  "Malouki",
		Biography: "I build **backend** systems.",
	}, nil)

	w := doRequest(srv, "GET", "/profile", "", "")

	require.Equal(t, http.StatusOK, w.Code)

	var response ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Keltoum", response.FirstName)
	assert.Empty(t, response.BiographyHTML)
}

func TestGetProfileRendered(t *testing.T) {
	srv, stores := newTestServer()
	RegisterProfileEndpoints(srv)

	stores.Profile.On("FetchProfile").Return(&model.Profile{
		Biography: "I build **backend** systems.",
	}, nil)

	w := doRequest(srv, "GET", "/profile?render=html", "", "")

	require.Equal(t, http.StatusOK, w.Code)

	var response ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.BiographyHTML, "<strong>backend</strong>")
}

func TestGetProfileNotFound(t *testing.T) {
	srv, stores := newTestServer()
	RegisterProfileEndpoints(srv)

	stores.Profile.On("FetchProfile").Return(nil, store.ErrNotFound)

	w := doRequest(srv, "GET", "/profile", "", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, api.CodeNotFound, decodeError(t, w).Extensions.Code)
}

func TestUpdateProfileMergesPatch(t *testing.T) {
	srv, stores := newTestServer()
	RegisterProfileEndpoints(srv)

	stores.Profile.On("FetchProfile").Return(&model.Profile{
		ID:        "profile-1",
		FirstName: "Keltoum",
		LastName:  "Malouki",
		Headline:  "Software Engineer",
		Biography: "a biography long enough",
		Email:     "keltoum@example.com",
	}, nil)
	stores.Profile.On("SaveProfile", mock.MatchedBy(func(p *model.Profile) bool {
		// Patched field changes, untouched fields survive.
		return p.Headline == "Backend Engineer" && p.FirstName == "Keltoum" && p.ID == "profile-1"
	})).Return(nil)

	w := doRequest(srv, "PUT", "/profile", adminToken(t, srv), `{"headline":"Backend Engineer"}`)

	require.Equal(t, http.StatusOK, w.Code)
	stores.Profile.AssertExpectations(t)
}

func TestUpdateProfileFirstWrite(t *testing.T) {
	srv, stores := newTestServer()
	RegisterProfileEndpoints(srv)

	stores.Profile.On("FetchProfile").Return(nil, store.ErrNotFound)
	stores.Profile.On("SaveProfile", mock.MatchedBy(func(p *model.Profile) bool {
		return p.ID == "" && p.FirstName == "Keltoum"
	})).Return(nil)

	body := `{"firstName":"Keltoum","lastName":"Malouki","headline":"Software Engineer","biography":"a biography long enough","email":"keltoum@example.com"}`
	w := doRequest(srv, "PUT", "/profile", adminToken(t, srv), body)

	require.Equal(t, http.StatusOK, w.Code)
	stores.Profile.AssertExpectations(t)
}

func TestUpdateProfileGuard(t *testing.T) {
	srv, _ := newTestServer()
	RegisterProfileEndpoints(srv)

	w := doRequest(srv, "PUT", "/profile", "", `{"headline":"Hacked"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, api.CodeUnauthenticated, decodeError(t, w).Extensions.Code)
}

func TestUpdateProfileValidation(t *testing.T) {
	srv, stores := newTestServer()
	RegisterProfileEndpoints(srv)

	w := doRequest(srv, "PUT", "/profile", adminToken(t, srv), `{"email":"not-an-email","website":"ftp://nope"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, api.CodeBadUserInput, apiErr.Extensions.Code)
	assert.Len(t, apiErr.Extensions.Fields, 2)
	stores.Profile.AssertNotCalled(t, "SaveProfile", mock.Anything)
}
