package endpoints

import (
	"github.com/keltoummalouki/talenthub/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterLoginEndpoint(srv)
	RegisterWhoamiEndpoint(srv)
	RegisterStatusEndpoint(srv)
	RegisterProfileEndpoints(srv)
	RegisterProjectsEndpoints(srv)
	RegisterSkillsEndpoints(srv)
	RegisterExperiencesEndpoints(srv)
	RegisterPortfolioEndpoint(srv)
}
