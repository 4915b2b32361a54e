package models

import (
	"time"
)

// ClothingItem is a single wardrobe entry owned by exactly one user.
// OwnerID is set at creation and never reassigned.
type ClothingItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"not null" json:"category"`
	Color    string `gorm:"not null" json:"color"`
	ImageURL string `json:"image_url"`
	OwnerID  uint   `gorm:"not null;index" json:"owner_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
