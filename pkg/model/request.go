package model

import "time"

// Status is the lifecycle state of an access request. Pending is the initial
// state; Approved and Rejected are terminal.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ValidDecision reports whether s names a terminal status an approver may
// assign.
func ValidDecision(s string) bool {
	switch Status(s) {
	case StatusApproved, StatusRejected:
		return true
	}
	return false
}

// AccessRequest links a user to a software entry with a requested access
// type. At most one Pending request may exist per (user, software,
// access_type); the requests_one_pending_idx partial index enforces this.
type AccessRequest struct {
	ID         uint      `gorm:"column:id;primaryKey"`
	UserID     uint      `gorm:"column:user_id"`
	SoftwareID uint      `gorm:"column:software_id"`
	AccessType string    `gorm:"column:access_type"`
	Reason     string    `gorm:"column:reason"`
	Status     Status    `gorm:"column:status"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`

	User     *User     `gorm:"foreignKey:UserID"`
	Software *Software `gorm:"foreignKey:SoftwareID"`
}

func (AccessRequest) TableName() string {
	return "requests"
}
