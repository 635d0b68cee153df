package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BackupStatus string

const (
	BackupSuccess    BackupStatus = "success"
	BackupFailed     BackupStatus = "failed"
	BackupInProgress BackupStatus = "in_progress"
	BackupPending    BackupStatus = "pending"
)

func (s BackupStatus) Valid() bool {
	switch s {
	case BackupSuccess, BackupFailed, BackupInProgress, BackupPending:
		return true
	}
	return false
}

// BackupHistory records one backup attempt's outcome for a device. The
// external agent inserts these as facts; nothing here drives a backup.
type BackupHistory struct {
	ID             string       `gorm:"primaryKey;size:64" json:"id"`
	DeviceID       string       `gorm:"size:64;not null;index" json:"device_id"`
	Status         BackupStatus `gorm:"size:32;not null" json:"status"`
	Message        string       `gorm:"size:1024" json:"message,omitempty"`
	ConfigFilePath string       `gorm:"size:1024" json:"config_file_path,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	Device *Device `json:"device,omitempty"`
}

func (BackupHistory) TableName() string { return "backup_history" }

func (b *BackupHistory) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
