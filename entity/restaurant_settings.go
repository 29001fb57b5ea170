package entity

import (
	"gorm.io/gorm"
)

// RestaurantSettings is 1:1 with Restaurant and is only ever created inside
// the onboarding transaction.
type RestaurantSettings struct {
	gorm.Model
	RestaurantID uint   `gorm:"uniqueIndex;not null" json:"restaurantId"`
	TemplateID   string `gorm:"not null;default:classic" json:"templateId"`

	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`

	FontHeading string `json:"fontHeading"`
	FontBody    string `json:"fontBody"`

	ShowPrices       bool `gorm:"default:true" json:"showPrices"`
	ShowDescriptions bool `gorm:"default:true" json:"showDescriptions"`
}
