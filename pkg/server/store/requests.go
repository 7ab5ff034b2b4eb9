package store

import "github.com/sivamani2003/accesshub/pkg/model"

// NewRequest carries the inputs for submitting an access request.
type NewRequest struct {
	UserID     uint
	SoftwareID uint
	AccessType string
	Reason     string
}

// RequestsStore abstracts access request storage operations. The
// check-then-write sequences (duplicate-pending check, status-transition
// guard) must be atomic in implementations; optimistic lock-free variants are
// not acceptable.
type RequestsStore interface {
	// CreateRequest persists a new Pending request and returns it joined
	// with its user and software. Returns ErrSoftwareNotFound if the
	// software id does not resolve and ErrDuplicatePending if a Pending
	// request for the same (user, software, access type) exists.
	CreateRequest(newRequest NewRequest) (*model.AccessRequest, error)

	// ListRequests returns all requests joined with user and software,
	// never nil.
	ListRequests() ([]model.AccessRequest, error)

	// ListRequestsByUser returns the user's requests joined with software,
	// never nil.
	ListRequestsByUser(userID uint) ([]model.AccessRequest, error)

	// FetchRequest retrieves a request by id joined with user and
	// software. Returns ErrRequestNotFound if no request matches.
	FetchRequest(id uint) (*model.AccessRequest, error)

	// UpdateStatus transitions a Pending request to a terminal status and
	// returns the updated record. Returns ErrRequestNotFound if the id
	// does not resolve and ErrRequestNotPending if the request is already
	// terminal.
	UpdateStatus(id uint, status model.Status) (*model.AccessRequest, error)

	// HasApprovedWrite reports whether the user holds an Approved request
	// with access type Write for the software.
	HasApprovedWrite(userID, softwareID uint) (bool, error)
}
