package entity

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	OwnerID     uint   `gorm:"not null" json:"ownerId"`
	Name        string `gorm:"not null" json:"name"`
	// partial index: slug uniqueness only applies to live rows, a
	// deleted restaurant frees its slug
	Slug string `gorm:"uniqueIndex:idx_restaurants_slug,where:deleted_at IS NULL;not null" json:"slug"`
	Description string `json:"description"`

	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	Address         string `json:"address"`
	FacebookURL     string `json:"facebookUrl"`
	InstagramHandle string `json:"instagramHandle"`
	TiktokHandle    string `json:"tiktokHandle"`

	IsActive            bool       `gorm:"default:true" json:"isActive"`
	PausedAt            *time.Time `json:"pausedAt"`
	PausedReason        *string    `json:"pausedReason"`
	OnboardingCompleted bool       `gorm:"default:false" json:"onboardingCompleted"`

	Settings   *RestaurantSettings `json:"-"`
	Categories []Category          `json:"-"`
	MenuItems  []MenuItem          `json:"-"`
}

// Paused reports whether an admin has hidden the public menu.
func (r *Restaurant) Paused() bool {
	return r.PausedAt != nil
}
