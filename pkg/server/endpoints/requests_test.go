package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sivamani2003/accesshub/pkg/identity"
	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server/store"
)

func TestHandleCreateRequest(t *testing.T) {
	grafana := &model.Software{ID: 7, Name: "Grafana", AccessLevels: model.DefaultAccessLevels}

	t.Run("employee submits a pending request", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		softwareStore := NewMockSoftwareStore()

		softwareStore.On("FetchSoftware", uint(7)).Return(grafana, nil)
		requestsStore.On("CreateRequest", store.NewRequest{
			UserID:     1,
			SoftwareID: 7,
			AccessType: "Read",
			Reason:     "need dashboards",
		}).Return(&model.AccessRequest{
			ID:         42,
			UserID:     1,
			SoftwareID: 7,
			AccessType: "Read",
			Reason:     "need dashboards",
			Status:     model.StatusPending,
			User:       &model.User{ID: 1, Username: "alice", Role: model.RoleEmployee},
			Software:   grafana,
		}, nil)

		handler := handleCreateRequest(requestsStore, softwareStore)

		req := requestWithIdentity("POST", "/requests", `{"softwareId":7,"accessType":"Read","reason":"need dashboards"}`, employeeIdentity())
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp RequestResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint(42), resp.ID)
		assert.Equal(t, "Pending", resp.Status)
		assert.Equal(t, "alice", resp.User.Username)
		assert.Equal(t, "Grafana", resp.Software.Name)
		requestsStore.AssertExpectations(t)
	})

	t.Run("managers and admins cannot submit requests", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		softwareStore := NewMockSoftwareStore()
		handler := handleCreateRequest(requestsStore, softwareStore)

		manager := requestWithIdentity("POST", "/requests", `{"softwareId":7,"accessType":"Read","reason":"x"}`, managerIdentity())
		admin := requestWithIdentity("POST", "/requests", `{"softwareId":7,"accessType":"Read","reason":"x"}`, adminIdentity())

		for _, req := range []*http.Request{manager, admin} {
			w := httptest.NewRecorder()
			handler(w, req)
			assert.Equal(t, http.StatusForbidden, w.Code)
		}
		requestsStore.AssertNotCalled(t, "CreateRequest", mock.Anything)
	})

	t.Run("404 for unknown software", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		softwareStore := NewMockSoftwareStore()
		softwareStore.On("FetchSoftware", uint(99)).Return(nil, store.ErrSoftwareNotFound)

		handler := handleCreateRequest(requestsStore, softwareStore)

		req := requestWithIdentity("POST", "/requests", `{"softwareId":99,"accessType":"Read","reason":"x"}`, employeeIdentity())
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects access type the software does not offer", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		softwareStore := NewMockSoftwareStore()
		softwareStore.On("FetchSoftware", uint(8)).Return(&model.Software{
			ID: 8, Name: "Vault", AccessLevels: []string{"Read"},
		}, nil)

		handler := handleCreateRequest(requestsStore, softwareStore)

		req := requestWithIdentity("POST", "/requests", `{"softwareId":8,"accessType":"Admin","reason":"x"}`, employeeIdentity())
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		requestsStore.AssertNotCalled(t, "CreateRequest", mock.Anything)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		softwareStore := NewMockSoftwareStore()
		handler := handleCreateRequest(requestsStore, softwareStore)

		for _, body := range []string{
			`{"accessType":"Read","reason":"x"}`,
			`{"softwareId":7,"reason":"x"}`,
			`{"softwareId":7,"accessType":"Read"}`,
		} {
			req := requestWithIdentity("POST", "/requests", body, employeeIdentity())
			w := httptest.NewRecorder()
			handler(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	})

	t.Run("rejects duplicate pending request", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		softwareStore := NewMockSoftwareStore()

		softwareStore.On("FetchSoftware", uint(7)).Return(grafana, nil)
		requestsStore.On("CreateRequest", mock.Anything).Return(nil, store.ErrDuplicatePending)

		handler := handleCreateRequest(requestsStore, softwareStore)

		req := requestWithIdentity("POST", "/requests", `{"softwareId":7,"accessType":"Read","reason":"again"}`, employeeIdentity())
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleListRequests(t *testing.T) {
	pending := []model.AccessRequest{
		{ID: 42, UserID: 1, SoftwareID: 7, AccessType: "Read", Status: model.StatusPending},
	}

	t.Run("manager sees all requests", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("ListRequests").Return(pending, nil)

		handler := handleListRequests(requestsStore)

		req := requestWithIdentity("GET", "/requests", "", managerIdentity())
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp []RequestResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp, 1)
	})

	t.Run("employee cannot list all requests", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		handler := handleListRequests(requestsStore)

		req := requestWithIdentity("GET", "/requests", "", employeeIdentity())
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		requestsStore.AssertNotCalled(t, "ListRequests")
	})

	t.Run("no requests serializes as empty array", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("ListRequests").Return([]model.AccessRequest{}, nil)

		handler := handleListRequests(requestsStore)

		req := requestWithIdentity("GET", "/requests", "", adminIdentity())
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestHandleMyRequests(t *testing.T) {
	t.Run("returns only the caller's requests", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("ListRequestsByUser", uint(1)).Return([]model.AccessRequest{
			{ID: 42, UserID: 1, SoftwareID: 7, AccessType: "Read", Status: model.StatusPending},
		}, nil)

		handler := handleMyRequests(requestsStore)

		req := requestWithIdentity("GET", "/requests/my-requests", "", employeeIdentity())
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		requestsStore.AssertExpectations(t)
	})
}

func TestHandleGetRequest(t *testing.T) {
	aliceRequest := &model.AccessRequest{
		ID: 42, UserID: 1, SoftwareID: 7, AccessType: "Read", Status: model.StatusPending,
	}

	t.Run("owner can view their request", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("FetchRequest", uint(42)).Return(aliceRequest, nil)

		handler := handleGetRequest(requestsStore)

		req := requestWithIdentity("GET", "/requests/42", "", employeeIdentity())
		req = withMuxVars(req, map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("manager can view any request", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("FetchRequest", uint(42)).Return(aliceRequest, nil)

		handler := handleGetRequest(requestsStore)

		req := requestWithIdentity("GET", "/requests/42", "", managerIdentity())
		req = withMuxVars(req, map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("another employee is forbidden", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("FetchRequest", uint(42)).Return(aliceRequest, nil)

		handler := handleGetRequest(requestsStore)

		bob := requestWithIdentity("GET", "/requests/42", "", &identity.Identity{UserID: 5, Username: "bob", Role: model.RoleEmployee})
		bob = withMuxVars(bob, map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler(w, bob)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("404 for unknown request", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("FetchRequest", uint(99)).Return(nil, store.ErrRequestNotFound)

		handler := handleGetRequest(requestsStore)

		req := requestWithIdentity("GET", "/requests/99", "", employeeIdentity())
		req = withMuxVars(req, map[string]string{"id": "99"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleUpdateStatus(t *testing.T) {
	t.Run("manager approves a pending request", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("UpdateStatus", uint(42), model.StatusApproved).Return(&model.AccessRequest{
			ID: 42, UserID: 1, SoftwareID: 7, AccessType: "Read", Status: model.StatusApproved,
		}, nil)

		handler := handleUpdateStatus(requestsStore)

		req := requestWithIdentity("PATCH", "/requests/42/status", `{"status":"Approved"}`, managerIdentity())
		req = withMuxVars(req, map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp RequestResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Approved", resp.Status)
	})

	t.Run("employee cannot decide", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		handler := handleUpdateStatus(requestsStore)

		req := requestWithIdentity("PATCH", "/requests/42/status", `{"status":"Approved"}`, employeeIdentity())
		req = withMuxVars(req, map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		requestsStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("rejects statuses outside the terminal set", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		handler := handleUpdateStatus(requestsStore)

		for _, body := range []string{
			`{"status":"Pending"}`,
			`{"status":"approved"}`,
			`{"status":"Done"}`,
			`{}`,
		} {
			req := requestWithIdentity("PATCH", "/requests/42/status", body, managerIdentity())
			req = withMuxVars(req, map[string]string{"id": "42"})
			w := httptest.NewRecorder()
			handler(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
		}
		requestsStore.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("terminal requests cannot be decided again", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("UpdateStatus", uint(42), model.StatusRejected).Return(nil, store.ErrRequestNotPending)

		handler := handleUpdateStatus(requestsStore)

		req := requestWithIdentity("PATCH", "/requests/42/status", `{"status":"Rejected"}`, managerIdentity())
		req = withMuxVars(req, map[string]string{"id": "42"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("404 for unknown request", func(t *testing.T) {
		requestsStore := NewMockRequestsStore()
		requestsStore.On("UpdateStatus", uint(99), model.StatusApproved).Return(nil, store.ErrRequestNotFound)

		handler := handleUpdateStatus(requestsStore)

		req := requestWithIdentity("PATCH", "/requests/99/status", `{"status":"Approved"}`, managerIdentity())
		req = withMuxVars(req, map[string]string{"id": "99"})
		w := httptest.NewRecorder()
		handler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
