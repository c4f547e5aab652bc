package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FullName     string    `json:"fullname" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Phone        string    `json:"phone" gorm:"not null"`
	AboutMe      string    `json:"aboutMe" gorm:"not null"`
	Password     string    `json:"-" gorm:"not null"`
	Avatar       MediaRef  `json:"avatar" gorm:"embedded;embeddedPrefix:avatar_"`
	Resume       MediaRef  `json:"resume" gorm:"embedded;embeddedPrefix:resume_"`
	PortfolioURL string    `json:"portfolioUrl" gorm:"not null"`
	GithubURL    string    `json:"githubUrl"`
	InstaURL     string    `json:"instaUrl"`
	LinkedInURL  string    `json:"linkedInUrl"`
	TwitterURL   string    `json:"twitterUrl"`

	// Password-recovery state: sha256 digest of the outstanding reset token
	// and its expiry. Both are nil outside an active recovery cycle.
	ResetPasswordToken     *string    `json:"-"`
	ResetPasswordExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
