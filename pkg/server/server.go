package server

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/sivamani2003/accesshub/pkg/config"
	"github.com/sivamani2003/accesshub/pkg/server/middleware"
	"github.com/sivamani2003/accesshub/pkg/server/store"
	gormstore "github.com/sivamani2003/accesshub/pkg/server/store/gorm"
	"github.com/sivamani2003/accesshub/pkg/token"
)

// Server wires the router, the stores, and the HTTP server together. All
// dependencies are explicit construction-time handles; there is no
// process-wide mutable state.
type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	Signer         *token.Signer
	AuthMiddleware *middleware.Authenticator

	UsersStore    store.UsersStore
	SoftwareStore store.SoftwareStore
	RequestsStore store.RequestsStore
	HealthStore   store.HealthStore

	srv *http.Server
}

// NewServer creates a Server with gorm-backed stores.
func NewServer(db *gorm.DB, signer *token.Signer, cfg *config.Config) *Server {
	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    cfg.Addr(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	usersStore := gormstore.NewUsersStore(db)

	return &Server{
		Router:         router,
		DB:             db,
		Config:         cfg,
		Signer:         signer,
		AuthMiddleware: middleware.NewAuthenticator(signer, usersStore),
		UsersStore:     usersStore,
		SoftwareStore:  gormstore.NewSoftwareStore(db),
		RequestsStore:  gormstore.NewRequestsStore(db),
		HealthStore:    gormstore.NewHealthStore(db),
		srv:            srv,
	}
}

// Start begins serving HTTP requests and blocks until the server stops.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
