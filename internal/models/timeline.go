package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Timeline struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (t *Timeline) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
