package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"netbackup/internal/models"
)

type SiteStore struct{ db *gorm.DB }

func NewSiteStore(db *gorm.DB) *SiteStore { return &SiteStore{db: db} }

type SiteInput struct {
	Name        string
	Code        string
	Description string
	Address     string
}

func (s *SiteStore) Create(ctx context.Context, in SiteInput) (*models.Site, error) {
	site := models.Site{
		Name:        in.Name,
		Code:        in.Code,
		Description: in.Description,
		Address:     in.Address,
	}
	if err := s.db.WithContext(ctx).Create(&site).Error; err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *SiteStore) List(ctx context.Context, skip, limit int) ([]models.Site, error) {
	skip, limit = pageOrDefault(skip, limit)
	var out []models.Site
	err := s.db.WithContext(ctx).Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (s *SiteStore) Get(ctx context.Context, id string) (*models.Site, error) {
	var site models.Site
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&site).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

// Update replaces every base field (the site contract is full
// replacement, not patch).
func (s *SiteStore) Update(ctx context.Context, id string, in SiteInput) (*models.Site, error) {
	site, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	site.Name = in.Name
	site.Code = in.Code
	site.Description = in.Description
	site.Address = in.Address
	if err := s.db.WithContext(ctx).Save(site).Error; err != nil {
		return nil, err
	}
	return site, nil
}

func (s *SiteStore) Delete(ctx context.Context, id string) error {
	site, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(site).Error
}
