package gorm

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server/store"
)

// Ensure SoftwareStore implements store.SoftwareStore
var _ store.SoftwareStore = (*SoftwareStore)(nil)

// SoftwareStore implements store.SoftwareStore using GORM
type SoftwareStore struct {
	db *gorm.DB
}

// NewSoftwareStore creates a new SoftwareStore
func NewSoftwareStore(db *gorm.DB) *SoftwareStore {
	return &SoftwareStore{db: db}
}

// ListSoftware returns all catalog entries.
func (s *SoftwareStore) ListSoftware() ([]model.Software, error) {
	software := make([]model.Software, 0)
	if err := s.db.Order("id").Find(&software).Error; err != nil {
		return nil, err
	}
	return software, nil
}

// FetchSoftware retrieves a catalog entry by id.
func (s *SoftwareStore) FetchSoftware(id uint) (*model.Software, error) {
	var software model.Software
	tx := s.db.Where("id = ?", id).First(&software)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, store.ErrSoftwareNotFound
		}
		return nil, tx.Error
	}
	return &software, nil
}

// CreateSoftware persists a new catalog entry.
func (s *SoftwareStore) CreateSoftware(software *model.Software) error {
	if err := s.db.Create(software).Error; err != nil {
		if isUniqueViolation(err, "") {
			return store.ErrSoftwareNameTaken
		}
		return err
	}
	return nil
}

// UpdateSoftware applies a patch inside a transaction. The row is locked so
// the read-modify-write cannot interleave with a concurrent update.
func (s *SoftwareStore) UpdateSoftware(id uint, patch store.SoftwarePatch) (*model.Software, error) {
	var software model.Software
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&software)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return store.ErrSoftwareNotFound
			}
			return result.Error
		}

		if patch.Name != nil && *patch.Name != "" {
			software.Name = *patch.Name
		}
		if patch.Description != nil {
			software.Description = *patch.Description
		}
		// An empty set would strand the entry; keep the previous value.
		if len(patch.AccessLevels) > 0 {
			software.AccessLevels = patch.AccessLevels
		}

		if err := tx.Save(&software).Error; err != nil {
			if isUniqueViolation(err, "") {
				return store.ErrSoftwareNameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &software, nil
}
