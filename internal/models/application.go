package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SoftwareApplication is a tool or app shown in the "apps" section.
type SoftwareApplication struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Icon      MediaRef  `json:"svg" gorm:"embedded;embeddedPrefix:icon_"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (a *SoftwareApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
