package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sivamani2003/accesshub/pkg/audit"
	"github.com/sivamani2003/accesshub/pkg/authz"
	"github.com/sivamani2003/accesshub/pkg/identity"
	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server"
	"github.com/sivamani2003/accesshub/pkg/server/store"
)

// CreateAccessRequest is the body of POST /requests
type CreateAccessRequest struct {
	SoftwareID uint   `json:"softwareId"`
	AccessType string `json:"accessType"`
	Reason     string `json:"reason"`
}

// UpdateStatusRequest is the body of PATCH /requests/{id}/status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RegisterRequestsEndpoints registers the /requests endpoints
func RegisterRequestsEndpoints(s *server.Server) {
	requestsRouter := s.Router.PathPrefix("/requests").Subrouter()
	requestsRouter.Use(s.AuthMiddleware.Middleware)

	// Static paths before the {id} pattern; gorilla matches in
	// registration order.
	requestsRouter.HandleFunc("/my-requests", handleMyRequests(s.RequestsStore)).Methods("GET")
	requestsRouter.HandleFunc("", handleListRequests(s.RequestsStore)).Methods("GET")
	requestsRouter.HandleFunc("", handleCreateRequest(s.RequestsStore, s.SoftwareStore)).Methods("POST")
	requestsRouter.HandleFunc("/{id:[0-9]+}", handleGetRequest(s.RequestsStore)).Methods("GET")
	requestsRouter.HandleFunc("/{id:[0-9]+}/status", handleUpdateStatus(s.RequestsStore)).Methods("PATCH")
}

func handleListRequests(requestsStore store.RequestsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if !authz.Allowed(id.Role, authz.ListAllRequests) {
			respondWithMessage(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		requests, err := requestsStore.ListRequests()
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "server error while fetching requests")
			return
		}

		respondWithJSON(w, http.StatusOK, requestResponses(requests))
	}
}

func handleMyRequests(requestsStore store.RequestsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if !authz.Allowed(id.Role, authz.ListOwnRequests) {
			respondWithMessage(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		requests, err := requestsStore.ListRequestsByUser(id.UserID)
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "server error while fetching requests")
			return
		}

		respondWithJSON(w, http.StatusOK, requestResponses(requests))
	}
}

func handleCreateRequest(requestsStore store.RequestsStore, softwareStore store.SoftwareStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if !authz.Allowed(id.Role, authz.CreateRequest) {
			respondWithMessage(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		var req CreateAccessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if req.SoftwareID == 0 || req.AccessType == "" || req.Reason == "" {
			respondWithMessage(w, http.StatusBadRequest, "all fields are required")
			return
		}

		software, err := softwareStore.FetchSoftware(req.SoftwareID)
		if err != nil {
			if errors.Is(err, store.ErrSoftwareNotFound) {
				respondWithMessage(w, http.StatusNotFound, "software not found")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "server error while creating request")
			return
		}

		if !software.AllowsAccessType(req.AccessType) {
			respondWithMessage(w, http.StatusBadRequest, "access type is not offered by this software")
			return
		}

		request, err := requestsStore.CreateRequest(store.NewRequest{
			UserID:     id.UserID,
			SoftwareID: req.SoftwareID,
			AccessType: req.AccessType,
			Reason:     req.Reason,
		})
		if err != nil {
			if errors.Is(err, store.ErrSoftwareNotFound) {
				respondWithMessage(w, http.StatusNotFound, "software not found")
				return
			}
			if errors.Is(err, store.ErrDuplicatePending) {
				audit.Log(audit.RequestEvent{
					Username:     id.Username,
					ClientIP:     clientIP(r),
					SoftwareName: software.Name,
					AccessType:   req.AccessType,
					ErrorMessage: "duplicate pending request",
				})
				respondWithMessage(w, http.StatusBadRequest, "you already have a pending request for this software and access type")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "server error while creating request")
			return
		}

		audit.Log(audit.RequestEvent{
			Username:     id.Username,
			ClientIP:     clientIP(r),
			SoftwareName: software.Name,
			AccessType:   req.AccessType,
			Success:      true,
		})

		respondWithJSON(w, http.StatusCreated, requestResponse(request))
	}
}

func handleGetRequest(requestsStore store.RequestsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		requestID, err := pathID(r)
		if err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid request id")
			return
		}

		request, err := requestsStore.FetchRequest(requestID)
		if err != nil {
			if errors.Is(err, store.ErrRequestNotFound) {
				respondWithMessage(w, http.StatusNotFound, "request not found")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "server error while fetching request")
			return
		}

		if !authz.Allowed(id.Role, authz.ViewRequest) && request.UserID != id.UserID {
			respondWithMessage(w, http.StatusForbidden, "you do not have permission to view this request")
			return
		}

		respondWithJSON(w, http.StatusOK, requestResponse(request))
	}
}

func handleUpdateStatus(requestsStore store.RequestsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())
		if !authz.Allowed(id.Role, authz.DecideRequest) {
			respondWithMessage(w, http.StatusForbidden, "insufficient permissions")
			return
		}

		requestID, err := pathID(r)
		if err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid request id")
			return
		}

		var req UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if !model.ValidDecision(req.Status) {
			respondWithMessage(w, http.StatusBadRequest, "valid status required (Approved or Rejected)")
			return
		}

		request, err := requestsStore.UpdateStatus(requestID, model.Status(req.Status))
		if err != nil {
			if errors.Is(err, store.ErrRequestNotFound) {
				respondWithMessage(w, http.StatusNotFound, "request not found")
				return
			}
			if errors.Is(err, store.ErrRequestNotPending) {
				respondWithMessage(w, http.StatusBadRequest, "only pending requests can be updated")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "server error while updating request status")
			return
		}

		audit.Log(audit.DecisionEvent{
			Approver:  id.Username,
			ClientIP:  clientIP(r),
			RequestID: request.ID,
			Status:    string(request.Status),
		})

		respondWithJSON(w, http.StatusOK, requestResponse(request))
	}
}
