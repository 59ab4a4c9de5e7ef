// internal/model/user.go
package model

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManagement Role = "management"
	RoleStaff      Role = "staff"
)

// Valid reports whether the role is one of the three known tiers.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManagement, RoleStaff:
		return true
	}
	return false
}

// level orders the tiers: admin > management > staff.
func (r Role) level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManagement:
		return 2
	case RoleStaff:
		return 1
	}
	return 0
}

// AtLeast reports whether r meets the given minimum tier.
func (r Role) AtLeast(min Role) bool {
	return r.level() >= min.level()
}

// AdminUsername is the seeded account that can never be deleted.
const AdminUsername = "admin"

type User struct {
	ID        uint      `gorm:"column:id;primaryKey" json:"id"`
	Username  string    `gorm:"column:username;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"column:password;not null" json:"-"`
	Email     *string   `gorm:"column:email;uniqueIndex" json:"email"`
	Name      string    `gorm:"column:name" json:"name"`
	Role      Role      `gorm:"column:role;not null" json:"role"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
