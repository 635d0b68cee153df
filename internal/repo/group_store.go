package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"netbackup/internal/models"
)

type GroupStore struct{ db *gorm.DB }

func NewGroupStore(db *gorm.DB) *GroupStore { return &GroupStore{db: db} }

type GroupInput struct {
	Name        string
	Description string
}

func (s *GroupStore) Create(ctx context.Context, in GroupInput) (*models.DeviceGroup, error) {
	g := models.DeviceGroup{Name: in.Name, Description: in.Description}
	if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
		return nil, err
	}
	g.Devices = []models.Device{}
	return &g, nil
}

func (s *GroupStore) List(ctx context.Context, skip, limit int) ([]models.DeviceGroup, error) {
	skip, limit = pageOrDefault(skip, limit)
	var out []models.DeviceGroup
	err := s.db.WithContext(ctx).Preload("Devices").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (s *GroupStore) Get(ctx context.Context, id string) (*models.DeviceGroup, error) {
	var g models.DeviceGroup
	err := s.db.WithContext(ctx).Preload("Devices").Where("id = ?", id).First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *GroupStore) Update(ctx context.Context, id string, in GroupInput) (*models.DeviceGroup, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Name = in.Name
	g.Description = in.Description
	if err := s.db.WithContext(ctx).Save(g).Error; err != nil {
		return nil, err
	}
	return g, nil
}

// Delete detaches member devices and removes the group. Devices are
// never cascade-deleted here.
func (s *GroupStore) Delete(ctx context.Context, id string) error {
	g, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(g).Association("Devices").Clear(); err != nil {
			return err
		}
		return tx.Delete(g).Error
	})
}

// AddDevice puts a device into a group. Adding an existing member is a
// silent no-op; membership stays a set.
func (s *GroupStore) AddDevice(ctx context.Context, groupID, deviceID string) (*models.DeviceGroup, error) {
	g, err := s.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}
	var d models.Device
	err = s.db.WithContext(ctx).Where("id = ?", deviceID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}

	if !s.isMember(g, deviceID) {
		if err := s.db.WithContext(ctx).Model(g).Association("Devices").Append(&d); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, groupID)
}

// RemoveDevice takes a device out of a group; removing a non-member is
// a silent no-op.
func (s *GroupStore) RemoveDevice(ctx context.Context, groupID, deviceID string) (*models.DeviceGroup, error) {
	g, err := s.Get(ctx, groupID)
	if err != nil {
		return nil, err
	}
	var d models.Device
	err = s.db.WithContext(ctx).Where("id = ?", deviceID).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeviceNotFound
	}
	if err != nil {
		return nil, err
	}

	if s.isMember(g, deviceID) {
		if err := s.db.WithContext(ctx).Model(g).Association("Devices").Delete(&d); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, groupID)
}

func (s *GroupStore) isMember(g *models.DeviceGroup, deviceID string) bool {
	for _, d := range g.Devices {
		if d.ID == deviceID {
			return true
		}
	}
	return false
}
