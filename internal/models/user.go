// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Default profile values applied when a user is created.
const (
	DefaultBodyType          = "unspecified"
	DefaultLifestyle         = "casual"
	DefaultComfortPreference = "medium"
)

// User represents a registered account with its style profile.
type User struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"not null" json:"-"`

	// Profile / preferences collected during onboarding.
	BodyType          string `gorm:"not null;default:unspecified" json:"body_type"`
	Lifestyle         string `gorm:"not null;default:casual" json:"lifestyle"`
	ComfortPreference string `gorm:"not null;default:medium" json:"comfort_preference"`

	// IsActive is reserved: persisted and returned, enforced by no operation.
	IsActive           bool `gorm:"not null;default:true" json:"is_active"`
	OnboardingComplete bool `gorm:"not null;default:false" json:"onboarding_complete"`

	// Deleting a user cascades to the wardrobe at the store level.
	WardrobeItems []ClothingItem `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
