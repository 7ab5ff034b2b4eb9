package endpoints

import (
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gorilla/mux"

	"github.com/sivamani2003/accesshub/pkg/identity"
	"github.com/sivamani2003/accesshub/pkg/model"
)

// requestWithIdentity builds a request carrying an authenticated identity,
// as the authentication middleware would have installed it.
func requestWithIdentity(method, target, body string, id *identity.Identity) *http.Request {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	return req.WithContext(identity.Set(req.Context(), id))
}

// withMuxVars injects gorilla route variables into the request so handlers
// can be called without going through the router.
func withMuxVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}

func employeeIdentity() *identity.Identity {
	return &identity.Identity{UserID: 1, Username: "alice", Role: model.RoleEmployee}
}

func managerIdentity() *identity.Identity {
	return &identity.Identity{UserID: 2, Username: "mallory", Role: model.RoleManager}
}

func adminIdentity() *identity.Identity {
	return &identity.Identity{UserID: 3, Username: "root", Role: model.RoleAdmin}
}
