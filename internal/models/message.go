package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is a note left through the public contact form.
type Message struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	SenderName string    `json:"senderName" gorm:"not null"`
	Subject    string    `json:"subject" gorm:"not null"`
	Message    string    `json:"message" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
