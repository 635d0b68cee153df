package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceCredential is a named, reusable login bundle devices reference
// through Device.CredentialID (the shared credential pool).
type DeviceCredential struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Username       string    `gorm:"size:255;not null" json:"username"`
	Password       string    `gorm:"size:255;not null" json:"password"`
	EnablePassword string    `gorm:"size:255" json:"enable_password,omitempty"`
	Description    string    `gorm:"size:255" json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c *DeviceCredential) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// DevicePassword is the per-device credential record, at most one per
// device. It duplicates the pool concept with a different field set
// (ssh_key instead of enable_password) and its own API surface, so both
// tables are kept.
type DevicePassword struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	DeviceID  *string   `gorm:"uniqueIndex;size:64" json:"device_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Username  string    `gorm:"size:255" json:"username"`
	Password  string    `gorm:"size:255" json:"password"`
	SSHKey    string    `gorm:"type:text" json:"ssh_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Device *Device `json:"-"`
}

func (p *DevicePassword) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
