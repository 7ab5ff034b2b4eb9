package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sivamani2003/accesshub/pkg/audit"
	"github.com/sivamani2003/accesshub/pkg/authz"
	"github.com/sivamani2003/accesshub/pkg/identity"
	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server"
	"github.com/sivamani2003/accesshub/pkg/server/store"
)

// CreateSoftwareRequest is the body of POST /software
type CreateSoftwareRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	AccessLevels []string `json:"accessLevels"`
}

// UpdateSoftwareRequest is the body of PATCH /software/{id}. Absent fields
// leave the stored values unchanged.
type UpdateSoftwareRequest struct {
	Name         *string  `json:"name"`
	Description  *string  `json:"description"`
	AccessLevels []string `json:"accessLevels"`
}

// RegisterSoftwareEndpoints registers the /software endpoints
func RegisterSoftwareEndpoints(s *server.Server) {
	softwareRouter := s.Router.PathPrefix("/software").Subrouter()
	softwareRouter.Use(s.AuthMiddleware.Middleware)

	softwareRouter.HandleFunc("", handleListSoftware(s.SoftwareStore)).Methods("GET")
	softwareRouter.HandleFunc("", handleCreateSoftware(s.SoftwareStore, s.Config.DefaultAccessLevels)).Methods("POST")
	softwareRouter.HandleFunc("/{id:[0-9]+}", handleGetSoftware(s.SoftwareStore)).Methods("GET")
	softwareRouter.HandleFunc("/{id:[0-9]+}", handleUpdateSoftware(s.SoftwareStore, s.RequestsStore)).Methods("PATCH")
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func handleListSoftware(softwareStore store.SoftwareStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if !authz.Allowed(id.Role, authz.ListSoftware) {
			respondWithMessage(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		software, err := softwareStore.ListSoftware()
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "server error while fetching software")
			return
		}

		respondWithJSON(w, http.StatusOK, softwareResponses(software))
	}
}

func handleGetSoftware(softwareStore store.SoftwareStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if !authz.Allowed(id.Role, authz.ViewSoftware) {
			respondWithMessage(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		softwareID, err := pathID(r)
		if err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid software id")
			return
		}

		software, err := softwareStore.FetchSoftware(softwareID)
		if err != nil {
			if errors.Is(err, store.ErrSoftwareNotFound) {
				respondWithMessage(w, http.StatusNotFound, "software not found")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "server error while fetching software")
			return
		}

		respondWithJSON(w, http.StatusOK, softwareResponse(software))
	}
}

func handleCreateSoftware(softwareStore store.SoftwareStore, defaultAccessLevels []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if !authz.Allowed(id.Role, authz.CreateSoftware) {
			respondWithMessage(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		var req CreateSoftwareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if req.Name == "" {
			respondWithMessage(w, http.StatusBadRequest, "software name is required")
			return
		}

		accessLevels := req.AccessLevels
		if len(accessLevels) == 0 {
			accessLevels = defaultAccessLevels
		}

		software := &model.Software{
			Name:         req.Name,
			Description:  req.Description,
			AccessLevels: accessLevels,
		}
		if err := softwareStore.CreateSoftware(software); err != nil {
			if errors.Is(err, store.ErrSoftwareNameTaken) {
				respondWithMessage(w, http.StatusConflict, "software with this name already exists")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "server error while creating software")
			return
		}

		audit.Log(audit.CatalogEvent{
			Username:     id.Username,
			ClientIP:     clientIP(r),
			SoftwareName: software.Name,
			Action:       "create",
		})

		respondWithJSON(w, http.StatusCreated, softwareResponse(software))
	}
}

func handleUpdateSoftware(softwareStore store.SoftwareStore, requestsStore store.RequestsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		softwareID, err := pathID(r)
		if err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid software id")
			return
		}

		if _, err := softwareStore.FetchSoftware(softwareID); err != nil {
			if errors.Is(err, store.ErrSoftwareNotFound) {
				respondWithMessage(w, http.StatusNotFound, "software not found")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "server error while updating software")
			return
		}

		isAdmin := authz.Allowed(id.Role, authz.UpdateSoftware)
		if !isAdmin {
			hasWrite, err := requestsStore.HasApprovedWrite(id.UserID, softwareID)
			if err != nil {
				respondWithMessage(w, http.StatusInternalServerError, "server error while updating software")
				return
			}
			if !hasWrite {
				respondWithMessage(w, http.StatusForbidden, "you do not have Write access to this software")
				return
			}
		}

		var req UpdateSoftwareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		patch := store.SoftwarePatch{
			Name:        req.Name,
			Description: req.Description,
		}
		// Changing the access-level set is reserved for admins; requests
		// from Write-approved users carry name/description only.
		if isAdmin {
			patch.AccessLevels = req.AccessLevels
		}

		software, err := softwareStore.UpdateSoftware(softwareID, patch)
		if err != nil {
			if errors.Is(err, store.ErrSoftwareNotFound) {
				respondWithMessage(w, http.StatusNotFound, "software not found")
				return
			}
			if errors.Is(err, store.ErrSoftwareNameTaken) {
				respondWithMessage(w, http.StatusConflict, "software with this name already exists")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "server error while updating software")
			return
		}

		audit.Log(audit.CatalogEvent{
			Username:     id.Username,
			ClientIP:     clientIP(r),
			SoftwareName: software.Name,
			Action:       "update",
		})

		respondWithJSON(w, http.StatusOK, softwareResponse(software))
	}
}
