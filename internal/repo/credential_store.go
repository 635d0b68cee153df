package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"netbackup/internal/models"
)

// CredentialStore manages the shared credential pool
// (models.DeviceCredential) referenced by Device.CredentialID.
type CredentialStore struct{ db *gorm.DB }

func NewCredentialStore(db *gorm.DB) *CredentialStore { return &CredentialStore{db: db} }

type CredentialInput struct {
	Name           string
	Username       string
	Password       string
	EnablePassword string
	Description    string
}

func (s *CredentialStore) Create(ctx context.Context, in CredentialInput) (*models.DeviceCredential, error) {
	c := models.DeviceCredential{
		Name:           in.Name,
		Username:       in.Username,
		Password:       in.Password,
		EnablePassword: in.EnablePassword,
		Description:    in.Description,
	}
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CredentialStore) List(ctx context.Context, skip, limit int) ([]models.DeviceCredential, error) {
	skip, limit = pageOrDefault(skip, limit)
	var out []models.DeviceCredential
	err := s.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (s *CredentialStore) Get(ctx context.Context, id string) (*models.DeviceCredential, error) {
	var c models.DeviceCredential
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CredentialStore) Update(ctx context.Context, id string, in CredentialInput) (*models.DeviceCredential, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = in.Name
	c.Username = in.Username
	c.Password = in.Password
	c.EnablePassword = in.EnablePassword
	c.Description = in.Description
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CredentialStore) Delete(ctx context.Context, id string) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(c).Error
}
