package endpoints

import (
	"github.com/sivamani2003/accesshub/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterAuthEndpoints(srv)
	RegisterSoftwareEndpoints(srv)
	RegisterRequestsEndpoints(srv)
	RegisterStatusEndpoints(srv)
}
