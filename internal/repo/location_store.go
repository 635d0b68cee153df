package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"netbackup/internal/models"
)

type LocationStore struct{ db *gorm.DB }

func NewLocationStore(db *gorm.DB) *LocationStore { return &LocationStore{db: db} }

type LocationInput struct {
	Name   string
	SiteID string
	Floor  string
	Room   string
}

func (s *LocationStore) Create(ctx context.Context, in LocationInput) (*models.Location, error) {
	loc := models.Location{
		Name:   in.Name,
		SiteID: in.SiteID,
		Floor:  in.Floor,
		Room:   in.Room,
	}
	if err := s.db.WithContext(ctx).Create(&loc).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, loc.ID)
}

func (s *LocationStore) List(ctx context.Context, skip, limit int) ([]models.Location, error) {
	skip, limit = pageOrDefault(skip, limit)
	var out []models.Location
	err := s.db.WithContext(ctx).Preload("Site").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (s *LocationStore) ListBySite(ctx context.Context, siteID string) ([]models.Location, error) {
	var out []models.Location
	err := s.db.WithContext(ctx).Preload("Site").Where("site_id = ?", siteID).Find(&out).Error
	return out, err
}

func (s *LocationStore) Get(ctx context.Context, id string) (*models.Location, error) {
	var loc models.Location
	err := s.db.WithContext(ctx).Preload("Site").Where("id = ?", id).First(&loc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (s *LocationStore) Update(ctx context.Context, id string, in LocationInput) (*models.Location, error) {
	loc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	loc.Name = in.Name
	loc.SiteID = in.SiteID
	loc.Floor = in.Floor
	loc.Room = in.Room
	if err := s.db.WithContext(ctx).Save(loc).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *LocationStore) Delete(ctx context.Context, id string) error {
	loc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(loc).Error
}
