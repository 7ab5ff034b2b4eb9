package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server/store"
)

// Ensure RequestsStore implements store.RequestsStore
var _ store.RequestsStore = (*RequestsStore)(nil)

// RequestsStore implements store.RequestsStore using GORM
type RequestsStore struct {
	db *gorm.DB
}

// NewRequestsStore creates a new RequestsStore
func NewRequestsStore(db *gorm.DB) *RequestsStore {
	return &RequestsStore{db: db}
}

// CreateRequest persists a new Pending request. The requests_one_pending_idx
// partial unique index is the authority on duplicates, so the insert itself
// is the duplicate check and concurrent submissions cannot both succeed.
func (s *RequestsStore) CreateRequest(newRequest store.NewRequest) (*model.AccessRequest, error) {
	request := model.AccessRequest{
		UserID:     newRequest.UserID,
		SoftwareID: newRequest.SoftwareID,
		AccessType: newRequest.AccessType,
		Reason:     newRequest.Reason,
		Status:     model.StatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var software model.Software
		if err := tx.Where("id = ?", newRequest.SoftwareID).First(&software).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrSoftwareNotFound
			}
			return err
		}

		if err := tx.Create(&request).Error; err != nil {
			if isUniqueViolation(err, "requests_one_pending_idx") {
				return store.ErrDuplicatePending
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.FetchRequest(request.ID)
}

// ListRequests returns all requests joined with user and software.
func (s *RequestsStore) ListRequests() ([]model.AccessRequest, error) {
	requests := make([]model.AccessRequest, 0)
	err := s.db.Preload("User").Preload("Software").Order("id").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ListRequestsByUser returns the user's requests joined with software.
func (s *RequestsStore) ListRequestsByUser(userID uint) ([]model.AccessRequest, error) {
	requests := make([]model.AccessRequest, 0)
	err := s.db.Preload("Software").Where("user_id = ?", userID).Order("id").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// FetchRequest retrieves a request by id joined with user and software.
func (s *RequestsStore) FetchRequest(id uint) (*model.AccessRequest, error) {
	var request model.AccessRequest
	tx := s.db.Preload("User").Preload("Software").Where("id = ?", id).First(&request)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrRequestNotFound
		}
		return nil, tx.Error
	}
	return &request, nil
}

// UpdateStatus transitions a Pending request to a terminal status. The
// conditional UPDATE makes the Pending check and the write a single
// statement; a request already decided by a concurrent call matches zero
// rows.
func (s *RequestsStore) UpdateStatus(id uint, status model.Status) (*model.AccessRequest, error) {
	result := s.db.Model(&model.AccessRequest{}).
		Where("id = ? AND status = ?", id, model.StatusPending).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var existing model.AccessRequest
		tx := s.db.Where("id = ?", id).First(&existing)
		if tx.Error != nil {
			if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
				return nil, store.ErrRequestNotFound
			}
			return nil, tx.Error
		}
		return nil, store.ErrRequestNotPending
	}

	return s.FetchRequest(id)
}

// HasApprovedWrite reports whether the user holds an Approved Write request
// for the software.
func (s *RequestsStore) HasApprovedWrite(userID, softwareID uint) (bool, error) {
	var count int64
	err := s.db.Model(&model.AccessRequest{}).
		Where("user_id = ? AND software_id = ? AND access_type = ? AND status = ?",
			userID, softwareID, "Write", model.StatusApproved).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
