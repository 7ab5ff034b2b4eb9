package model

import (
	"time"

	"github.com/lib/pq"
)

// DefaultAccessLevels is the access-level set assigned to catalog entries
// created without an explicit one.
var DefaultAccessLevels = []string{"Read", "Write", "Admin"}

// Software is a catalog entry users may request access to. AccessLevels is
// stored as a native text[] column; the ordered []string view is the only
// in-memory representation.
type Software struct {
	ID           uint           `gorm:"column:id;primaryKey"`
	Name         string         `gorm:"column:name;unique"`
	Description  string         `gorm:"column:description"`
	AccessLevels pq.StringArray `gorm:"column:access_levels;type:text[]"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime"`
}

func (Software) TableName() string {
	return "software"
}

// AllowsAccessType reports whether the entry declares the given access level.
func (s *Software) AllowsAccessType(accessType string) bool {
	for _, level := range s.AccessLevels {
		if level == accessType {
			return true
		}
	}
	return false
}
