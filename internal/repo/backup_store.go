package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"netbackup/internal/models"
)

type BackupStore struct{ db *gorm.DB }

func NewBackupStore(db *gorm.DB) *BackupStore { return &BackupStore{db: db} }

type BackupCreateInput struct {
	DeviceID       string
	Status         models.BackupStatus
	Message        string
	ConfigFilePath string
}

// Create records a backup outcome reported by the external agent. A
// successful record stamps the device's last_backup; device status is
// left alone and may diverge from the history.
func (s *BackupStore) Create(ctx context.Context, in BackupCreateInput) (*models.BackupHistory, error) {
	tx := s.db.WithContext(ctx)

	var d models.Device
	err := tx.Where("id = ?", in.DeviceID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}

	b := models.BackupHistory{
		DeviceID:       in.DeviceID,
		Status:         in.Status,
		Message:        in.Message,
		ConfigFilePath: in.ConfigFilePath,
	}
	if err := tx.Create(&b).Error; err != nil {
		return nil, err
	}

	if in.Status == models.BackupSuccess {
		now := time.Now().UTC()
		if err := tx.Model(&d).Update("last_backup", now).Error; err != nil {
			return nil, err
		}
	}
	return &b, nil
}

func (s *BackupStore) List(ctx context.Context, skip, limit int) ([]models.BackupHistory, error) {
	skip, limit = pageOrDefault(skip, limit)
	var out []models.BackupHistory
	err := s.db.WithContext(ctx).Offset(skip).Limit(limit).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *BackupStore) Get(ctx context.Context, id string) (*models.BackupHistory, error) {
	var b models.BackupHistory
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *BackupStore) Delete(ctx context.Context, id string) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(b).Error
}
