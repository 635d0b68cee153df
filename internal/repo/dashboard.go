package repo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"netbackup/internal/models"
)

type DashboardStore struct{ db *gorm.DB }

func NewDashboardStore(db *gorm.DB) *DashboardStore { return &DashboardStore{db: db} }

type RecentActivity struct {
	ID         string              `json:"id"`
	DeviceName string              `json:"device_name"`
	Status     models.BackupStatus `json:"status"`
	Message    string              `json:"message"`
	CreatedAt  time.Time           `json:"created_at"`
}

type DashboardStats struct {
	TotalDevices      int64            `json:"total_devices"`
	ActiveDevices     int64            `json:"active_devices"`
	InactiveDevices   int64            `json:"inactive_devices"`
	TotalBackups      int64            `json:"total_backups"`
	SuccessfulBackups int64            `json:"successful_backups"`
	FailedBackups     int64            `json:"failed_backups"`
	RecentActivities  []RecentActivity `json:"recent_activities"`
}

// Stats recomputes the dashboard snapshot straight from the store.
// Device counts are point-in-time; backup counts cover the trailing 24
// hours. Inactive and failed are counted by status — pending/maintenance
// devices and in-flight backups belong to neither bucket.
func (s *DashboardStore) Stats(ctx context.Context) (*DashboardStats, error) {
	tx := s.db.WithContext(ctx)
	out := &DashboardStats{RecentActivities: []RecentActivity{}}

	if err := tx.Model(&models.Device{}).Count(&out.TotalDevices).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&models.Device{}).Where("status = ?", models.DeviceActive).
		Count(&out.ActiveDevices).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&models.Device{}).Where("status = ?", models.DeviceInactive).
		Count(&out.InactiveDevices).Error; err != nil {
		return nil, err
	}

	since := time.Now().UTC().Add(-24 * time.Hour)
	if err := tx.Model(&models.BackupHistory{}).Where("created_at >= ?", since).
		Count(&out.TotalBackups).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&models.BackupHistory{}).Where("created_at >= ? AND status = ?", since, models.BackupSuccess).
		Count(&out.SuccessfulBackups).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&models.BackupHistory{}).Where("created_at >= ? AND status = ?", since, models.BackupFailed).
		Count(&out.FailedBackups).Error; err != nil {
		return nil, err
	}

	var recent []models.BackupHistory
	if err := tx.Preload("Device").Order("created_at DESC").Limit(10).Find(&recent).Error; err != nil {
		return nil, err
	}
	for _, b := range recent {
		a := RecentActivity{
			ID:        b.ID,
			Status:    b.Status,
			Message:   b.Message,
			CreatedAt: b.CreatedAt,
		}
		if b.Device != nil {
			a.DeviceName = b.Device.Name
		}
		out.RecentActivities = append(out.RecentActivities, a)
	}
	return out, nil
}
