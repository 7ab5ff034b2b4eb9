package store

import "github.com/sivamani2003/accesshub/pkg/model"

// SoftwarePatch carries the optional fields of a catalog update. Nil fields
// are left unchanged. An empty AccessLevels slice is ignored so the
// access-level set never becomes empty.
type SoftwarePatch struct {
	Name         *string
	Description  *string
	AccessLevels []string
}

// SoftwareStore abstracts catalog storage operations
type SoftwareStore interface {
	// ListSoftware returns all catalog entries, never nil.
	ListSoftware() ([]model.Software, error)

	// FetchSoftware retrieves a catalog entry by id. Returns
	// ErrSoftwareNotFound if no entry matches.
	FetchSoftware(id uint) (*model.Software, error)

	// CreateSoftware persists a new catalog entry. Returns
	// ErrSoftwareNameTaken if the name is already in use.
	CreateSoftware(software *model.Software) error

	// UpdateSoftware applies a patch to a catalog entry and returns the
	// updated record. Returns ErrSoftwareNotFound if no entry matches.
	UpdateSoftware(id uint, patch SoftwarePatch) (*model.Software, error)
}
