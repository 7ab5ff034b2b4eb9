package model

import "time"

// Role classifies a user for authorization purposes. Roles are fixed at
// creation; there is no promotion flow.
type Role string

const (
	RoleEmployee Role = "Employee"
	RoleManager  Role = "Manager"
	RoleAdmin    Role = "Admin"
)

// ValidRole reports whether s names one of the known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleEmployee, RoleManager, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered principal. Password holds the bcrypt hash,
// never the plaintext.
type User struct {
	ID        uint      `gorm:"column:id;primaryKey"`
	Username  string    `gorm:"column:username;unique"`
	Password  string    `gorm:"column:password"`
	Role      Role      `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
