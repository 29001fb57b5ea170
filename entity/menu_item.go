package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	CategoryID uint `gorm:"not null;index" json:"categoryId"`
	// Denormalized owner for cheap tenant-scoped queries and ownership checks.
	RestaurantID uint `gorm:"not null;index" json:"restaurantId"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// nil ⇒ no price shown (e.g. "market price" items)
	BasePrice *float64 `json:"basePrice"`

	DisplayOrder int  `gorm:"default:0" json:"displayOrder"`
	IsVisible    bool `gorm:"default:true" json:"isVisible"`
	IsFeatured   bool `gorm:"default:false" json:"isFeatured"`
}
