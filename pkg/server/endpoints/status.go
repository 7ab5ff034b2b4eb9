package endpoints

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/sivamani2003/accesshub/pkg/server"
	"github.com/sivamani2003/accesshub/pkg/server/store"
)

// VersionResponse represents the response from /
type VersionResponse struct {
	Version string `json:"version"`
}

// HealthResponse represents the response from /health
type HealthResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// RegisterStatusEndpoints registers the version and health endpoints.
// Neither requires authentication.
func RegisterStatusEndpoints(s *server.Server) {
	s.Router.HandleFunc("/", handleVersion()).Methods("GET")
	s.Router.HandleFunc("/health", handleHealth(s.HealthStore)).Methods("GET")
}

func handleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := os.Getenv("ACCESSHUB_VERSION_DISPLAY")
		if version == "" {
			version = "0.1.0"
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(VersionResponse{Version: version})
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := healthStore.CheckConnectivity(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(HealthResponse{
				Status: "error",
				Error:  "database connectivity check failed",
			})
			return
		}

		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}
}
