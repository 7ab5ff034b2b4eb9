// Package authz holds the role-based authorization policy as a declarative
// table. Ownership checks (a user viewing their own request, a Write-approved
// user editing a catalog entry) are evaluated by the handlers on top of this
// table.
package authz

import "github.com/sivamani2003/accesshub/pkg/model"

// Operation names a role-gated API operation.
type Operation string

const (
	ListAllRequests Operation = "requests:list-all"
	ListOwnRequests Operation = "requests:list-own"
	CreateRequest   Operation = "requests:create"
	DecideRequest   Operation = "requests:decide"
	ViewRequest     Operation = "requests:view"
	ListSoftware    Operation = "software:list"
	ViewSoftware    Operation = "software:view"
	CreateSoftware  Operation = "software:create"
	UpdateSoftware  Operation = "software:update"
)

var policy = map[Operation][]model.Role{
	ListAllRequests: {model.RoleManager, model.RoleAdmin},
	ListOwnRequests: {model.RoleEmployee, model.RoleManager, model.RoleAdmin},
	CreateRequest:   {model.RoleEmployee},
	DecideRequest:   {model.RoleManager, model.RoleAdmin},
	// ViewRequest additionally permits the request's owner; see the handler.
	ViewRequest:  {model.RoleManager, model.RoleAdmin},
	ListSoftware: {model.RoleEmployee, model.RoleManager, model.RoleAdmin},
	ViewSoftware: {model.RoleEmployee, model.RoleManager, model.RoleAdmin},
	CreateSoftware: {model.RoleAdmin},
	// UpdateSoftware additionally permits holders of an Approved Write
	// request for the entry; see the handler.
	UpdateSoftware: {model.RoleAdmin},
}

// Allowed reports whether the role may perform the operation.
func Allowed(role model.Role, op Operation) bool {
	for _, permitted := range policy[op] {
		if role == permitted {
			return true
		}
	}
	return false
}
