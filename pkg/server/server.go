package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/keltoummalouki/talenthub/pkg/audit"
	"github.com/keltoummalouki/talenthub/pkg/config"
	"github.com/keltoummalouki/talenthub/pkg/identity"
	"github.com/keltoummalouki/talenthub/pkg/server/middleware"
	"github.com/keltoummalouki/talenthub/pkg/server/store"
	gormstore "github.com/keltoummalouki/talenthub/pkg/server/store/gorm"
	"github.com/keltoummalouki/talenthub/pkg/token"
)

// Server holds the router, the stores and everything endpoint handlers
// depend on.
type Server struct {
	Router   *mux.Router
	DB       *gorm.DB
	Config   *config.Config
	Codec    *token.Codec
	Resolver *identity.Resolver
	Audit    *audit.Logger

	UsersStore       store.UsersStore
	ProfileStore     store.ProfileStore
	ProjectsStore    store.ProjectsStore
	SkillsStore      store.SkillsStore
	ExperiencesStore store.ExperiencesStore
	HealthStore      store.HealthStore

	srv *http.Server
}

// NewServer wires the stores and middleware onto a fresh router.
// Every request passes through the identity middleware; the resolver
// never rejects, handlers decide what anonymous callers may do.
func NewServer(db *gorm.DB, cfg *config.Config, codec *token.Codec) *Server {
	router := mux.NewRouter()
	resolver := identity.NewResolver(codec)
	router.Use(middleware.Identity(resolver))

	var handler http.Handler = handlers.LoggingHandler(os.Stdout, router)
	if len(cfg.CORSAllowedOrigins) > 0 {
		handler = handlers.CORS(
			handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		)(handler)
	}

	srv := &http.Server{
		Handler: handler,
		Addr:    fmt.Sprintf("%s:%d", cfg.BindAddress, cfg.Port),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:   router,
		DB:       db,
		Config:   cfg,
		Codec:    codec,
		Resolver: resolver,
		Audit:    audit.DefaultLogger,

		UsersStore:       gormstore.NewUsersStore(db),
		ProfileStore:     gormstore.NewProfileStore(db),
		ProjectsStore:    gormstore.NewProjectsStore(db),
		SkillsStore:      gormstore.NewSkillsStore(db),
		ExperiencesStore: gormstore.NewExperiencesStore(db),
		HealthStore:      gormstore.NewHealthStore(db),

		srv: srv,
	}
}

// Start begins serving requests. It blocks until the listener fails.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}
