package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Site is a physical facility owning locations.
type Site struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Code        string    `gorm:"size:64;not null" json:"code"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	Address     string    `gorm:"size:255" json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Locations []Location `json:"-"`
}

func (s *Site) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Location is a spot inside a site (floor/room granularity).
type Location struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	SiteID    string    `gorm:"size:64;not null" json:"site_id"`
	Floor     string    `gorm:"size:64" json:"floor,omitempty"`
	Room      string    `gorm:"size:64" json:"room,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Site *Site `json:"site,omitempty"`
}

func (l *Location) BeforeCreate(_ *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
