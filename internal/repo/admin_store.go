package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"netbackup/internal/models"
)

type AdminStore struct{ db *gorm.DB }

func NewAdminStore(db *gorm.DB) *AdminStore { return &AdminStore{db: db} }

type AdminCreateInput struct {
	Username     string
	Email        string
	PasswordHash string
	Role         models.AdminRole
	Status       models.AdminStatus
}

type AdminUpdateInput struct {
	Username     *string
	Email        *string
	PasswordHash *string
	Role         *models.AdminRole
	Status       *models.AdminStatus
}

func (s *AdminStore) Create(ctx context.Context, in AdminCreateInput) (*models.Admin, error) {
	var existing models.Admin
	err := s.db.WithContext(ctx).Where("username = ?", in.Username).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a := models.Admin{
		Username: in.Username,
		Email:    in.Email,
		Password: in.PasswordHash,
		Role:     in.Role,
		Status:   in.Status,
	}
	if a.Status == "" {
		a.Status = models.AdminActive
	}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdminStore) List(ctx context.Context, skip, limit int) ([]models.Admin, error) {
	skip, limit = pageOrDefault(skip, limit)
	var out []models.Admin
	err := s.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (s *AdminStore) Get(ctx context.Context, id string) (*models.Admin, error) {
	var a models.Admin
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdminStore) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *AdminStore) Update(ctx context.Context, id string, in AdminUpdateInput) (*models.Admin, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		a.Username = *in.Username
	}
	if in.Email != nil {
		a.Email = *in.Email
	}
	if in.PasswordHash != nil {
		a.Password = *in.PasswordHash
	}
	if in.Role != nil {
		a.Role = *in.Role
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if err := s.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an admin. selfID is the caller's own id; deleting
// yourself is rejected.
func (s *AdminStore) Delete(ctx context.Context, id, selfID string) error {
	if id == selfID {
		return ErrSelfDelete
	}
	a, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(a).Error
}
