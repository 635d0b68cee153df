package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"netbackup/internal/models"
)

// PasswordStore manages per-device credentials
// (models.DevicePassword), at most one record per device.
type PasswordStore struct{ db *gorm.DB }

func NewPasswordStore(db *gorm.DB) *PasswordStore { return &PasswordStore{db: db} }

type PasswordCreateInput struct {
	DeviceID *string
	Name     string
	Username string
	Password string
	SSHKey   string
}

type PasswordUpdateInput struct {
	Name     *string
	Username *string
	Password *string
	SSHKey   *string
}

func (s *PasswordStore) Create(ctx context.Context, in PasswordCreateInput) (*models.DevicePassword, error) {
	tx := s.db.WithContext(ctx)

	if in.DeviceID != nil {
		var d models.Device
		err := tx.Where("id = ?", *in.DeviceID).First(&d).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDeviceNotFound
		}
		if err != nil {
			return nil, err
		}

		var existing models.DevicePassword
		err = tx.Where("device_id = ?", *in.DeviceID).First(&existing).Error
		if err == nil {
			return nil, ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	p := models.DevicePassword{
		DeviceID: in.DeviceID,
		Name:     in.Name,
		Username: in.Username,
		Password: in.Password,
		SSHKey:   in.SSHKey,
	}
	if err := tx.Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PasswordStore) List(ctx context.Context) ([]models.DevicePassword, error) {
	var out []models.DevicePassword
	err := s.db.WithContext(ctx).Find(&out).Error
	return out, err
}

func (s *PasswordStore) GetByDevice(ctx context.Context, deviceID string) (*models.DevicePassword, error) {
	var p models.DevicePassword
	err := s.db.WithContext(ctx).Where("device_id = ?", deviceID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PasswordStore) UpdateByDevice(ctx context.Context, deviceID string, in PasswordUpdateInput) (*models.DevicePassword, error) {
	p, err := s.GetByDevice(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Username != nil {
		p.Username = *in.Username
	}
	if in.Password != nil {
		p.Password = *in.Password
	}
	if in.SSHKey != nil {
		p.SSHKey = *in.SSHKey
	}
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PasswordStore) DeleteByDevice(ctx context.Context, deviceID string) error {
	p, err := s.GetByDevice(ctx, deviceID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(p).Error
}
