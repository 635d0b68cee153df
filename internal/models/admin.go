package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRole is the closed role set; ranks order the hierarchy.
type AdminRole string

const (
	RoleReadOnly   AdminRole = "read_only"
	RoleAdmin      AdminRole = "admin"
	RoleSuperAdmin AdminRole = "super_admin"
)

// Rank returns the hierarchy level, -1 for unknown roles.
func (r AdminRole) Rank() int {
	switch r {
	case RoleReadOnly:
		return 0
	case RoleAdmin:
		return 1
	case RoleSuperAdmin:
		return 2
	}
	return -1
}

func (r AdminRole) Valid() bool { return r.Rank() >= 0 }

type AdminStatus string

const (
	AdminActive   AdminStatus = "active"
	AdminInactive AdminStatus = "inactive"
)

func (s AdminStatus) Valid() bool { return s == AdminActive || s == AdminInactive }

// Admin is an operator account for the management API.
type Admin struct {
	ID        string      `gorm:"primaryKey;size:64" json:"id"`
	Username  string      `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Email     string      `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string      `gorm:"size:255;not null" json:"-"`
	Role      AdminRole   `gorm:"size:32;not null" json:"role"`
	Status    AdminStatus `gorm:"size:32;default:active" json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	LastLogin *time.Time  `json:"last_login"`
}

func (a *Admin) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
