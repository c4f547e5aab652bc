package models

// MediaRef points at an object in the external media store: the storage key
// used for deletion plus the public URL served to the frontend.
type MediaRef struct {
	PublicID string `json:"public_id" gorm:"not null"`
	URL      string `json:"url" gorm:"not null"`
}
