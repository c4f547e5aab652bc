package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section is a singleton row of page-section visibility toggles for the
// portfolio frontend.
type Section struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Main     bool      `json:"main"`
	About    bool      `json:"about"`
	Projects bool      `json:"projects"`
	Skills   bool      `json:"skills"`
	Apps     bool      `json:"apps"`
	Timeline bool      `json:"timeline"`
	Contact  bool      `json:"contact"`
	Footer   bool      `json:"footer"`
	DarkMode bool      `json:"darkMode"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
