package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DeviceType string

const (
	DeviceSwitch   DeviceType = "Switch"
	DeviceRouter   DeviceType = "Router"
	DeviceFirewall DeviceType = "Firewall"
)

func (t DeviceType) Valid() bool {
	switch t {
	case DeviceSwitch, DeviceRouter, DeviceFirewall:
		return true
	}
	return false
}

type DeviceStatus string

const (
	DeviceActive      DeviceStatus = "active"
	DeviceInactive    DeviceStatus = "inactive"
	DevicePending     DeviceStatus = "pending"
	DeviceMaintenance DeviceStatus = "maintenance"
)

func (s DeviceStatus) Valid() bool {
	switch s {
	case DeviceActive, DeviceInactive, DevicePending, DeviceMaintenance:
		return true
	}
	return false
}

// Device is a managed network element. Backup execution happens outside
// this system; the record only tracks where the device lives, how to
// reach it and what the last backup said.
type Device struct {
	ID           string            `gorm:"primaryKey;size:64" json:"id"`
	Name         string            `gorm:"size:255;not null" json:"name"`
	IPAddress    string            `gorm:"size:64;not null" json:"ip_address"`
	Type         DeviceType        `gorm:"size:32;not null" json:"type"`
	Status       DeviceStatus      `gorm:"size:32;default:inactive" json:"status"`
	SiteID       *string           `gorm:"size:64" json:"site_id"`
	LocationID   *string           `gorm:"size:64" json:"location_id"`
	CredentialID *string           `gorm:"size:64" json:"credential_id"`
	LastBackup   *time.Time        `json:"last_backup"`
	NextBackup   *time.Time        `json:"next_backup"`
	Config       datatypes.JSONMap `json:"config,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	Site          *Site             `json:"site,omitempty"`
	Location      *Location         `json:"location,omitempty"`
	Credential    *DeviceCredential `json:"credential,omitempty"`
	Groups        []DeviceGroup     `gorm:"many2many:device_group_association" json:"groups"`
	BackupHistory []BackupHistory   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (d *Device) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Status == "" {
		d.Status = DeviceInactive
	}
	return nil
}

// DeviceGroup is a free-form device collection (m2m with Device).
// Removing a group detaches devices, never deletes them.
type DeviceGroup struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Devices []Device `gorm:"many2many:device_group_association" json:"devices"`
}

func (g *DeviceGroup) BeforeCreate(_ *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
