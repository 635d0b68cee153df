package repo

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"netbackup/internal/models"
)

type DeviceStore struct{ db *gorm.DB }

func NewDeviceStore(db *gorm.DB) *DeviceStore { return &DeviceStore{db: db} }

// devicePreloads eager-loads everything a device response nests. The
// location's own site rides along so callers can reach
// device.location.site without extra queries.
func devicePreloads(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Site").
		Preload("Location").
		Preload("Location.Site").
		Preload("Credential").
		Preload("Groups")
}

type DeviceCreateInput struct {
	Name         string
	IPAddress    string
	Type         models.DeviceType
	Status       models.DeviceStatus // empty — inactive
	SiteID       *string
	LocationID   *string
	CredentialID *string
	Config       map[string]any
	GroupIDs     []string
}

type DeviceUpdateInput struct {
	Name         *string
	IPAddress    *string
	Type         *models.DeviceType
	Status       *models.DeviceStatus
	SiteID       *string // nil — leave alone; "" — detach
	LocationID   *string // nil — leave alone; "" — detach
	CredentialID *string // nil — leave alone; "" — detach
	Config       map[string]any
	GroupIDs     *[]string // nil — leave memberships alone; empty — clear
}

// nilIfEmpty maps an explicit empty string to NULL. JSON null and an
// absent field both decode to a nil pointer, so "" is the wire form for
// clearing a reference.
func nilIfEmpty(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

func (s *DeviceStore) Create(ctx context.Context, in DeviceCreateInput) (*models.Device, error) {
	tx := s.db.WithContext(ctx)

	// A dangling credential reference is never persisted.
	if in.CredentialID != nil {
		var cred models.DeviceCredential
		if err := tx.Where("id = ?", *in.CredentialID).First(&cred).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	d := models.Device{
		Name:         in.Name,
		IPAddress:    in.IPAddress,
		Type:         in.Type,
		Status:       in.Status,
		SiteID:       in.SiteID,
		LocationID:   in.LocationID,
		CredentialID: in.CredentialID,
	}
	if in.Config != nil {
		d.Config = datatypes.JSONMap(in.Config)
	}
	if len(in.GroupIDs) > 0 {
		var groups []models.DeviceGroup
		if err := tx.Where("id IN ?", in.GroupIDs).Find(&groups).Error; err != nil {
			return nil, err
		}
		d.Groups = groups
	}

	if err := tx.Create(&d).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, d.ID)
}

func (s *DeviceStore) List(ctx context.Context, skip, limit int) ([]models.Device, error) {
	skip, limit = pageOrDefault(skip, limit)
	var out []models.Device
	err := devicePreloads(s.db.WithContext(ctx)).Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}

func (s *DeviceStore) Get(ctx context.Context, id string) (*models.Device, error) {
	var d models.Device
	err := devicePreloads(s.db.WithContext(ctx)).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Update patches only the provided fields; group memberships are
// replaced wholesale when GroupIDs is non-nil. An explicit empty string
// for site_id, location_id or credential_id detaches the reference.
func (s *DeviceStore) Update(ctx context.Context, id string, in DeviceUpdateInput) (*models.Device, error) {
	tx := s.db.WithContext(ctx)

	var d models.Device
	err := tx.Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if in.CredentialID != nil && *in.CredentialID != "" {
		var cred models.DeviceCredential
		if err := tx.Where("id = ?", *in.CredentialID).First(&cred).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.IPAddress != nil {
		d.IPAddress = *in.IPAddress
	}
	if in.Type != nil {
		d.Type = *in.Type
	}
	if in.Status != nil {
		d.Status = *in.Status
	}
	if in.SiteID != nil {
		d.SiteID = nilIfEmpty(in.SiteID)
	}
	if in.LocationID != nil {
		d.LocationID = nilIfEmpty(in.LocationID)
	}
	if in.CredentialID != nil {
		d.CredentialID = nilIfEmpty(in.CredentialID)
	}
	if in.Config != nil {
		d.Config = datatypes.JSONMap(in.Config)
	}

	if err := tx.Save(&d).Error; err != nil {
		return nil, err
	}

	if in.GroupIDs != nil {
		var groups []models.DeviceGroup
		if len(*in.GroupIDs) > 0 {
			if err := tx.Where("id IN ?", *in.GroupIDs).Find(&groups).Error; err != nil {
				return nil, err
			}
		}
		if err := tx.Model(&d).Association("Groups").Replace(groups); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, id)
}

// Delete removes the device together with its backup history; group
// membership rows go too, the groups themselves stay.
func (s *DeviceStore) Delete(ctx context.Context, id string) error {
	var d models.Device
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", id).Delete(&models.BackupHistory{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&d).Association("Groups").Clear(); err != nil {
			return err
		}
		return tx.Delete(&d).Error
	})
}
