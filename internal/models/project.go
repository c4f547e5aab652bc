package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	GitRepoLink  string    `json:"gitRepoLink" gorm:"not null"`
	ProjectLink  string    `json:"projectLink" gorm:"not null"`
	Stack        string    `json:"stack" gorm:"not null"`
	Technologies string    `json:"technologies" gorm:"not null"`
	Deployed     string    `json:"deployed" gorm:"not null"`
	Banner       MediaRef  `json:"projectBanner" gorm:"embedded;embeddedPrefix:banner_"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
