package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	RestaurantID uint   `gorm:"not null;index" json:"restaurantId"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`

	// Relative sort key within the restaurant. Not unique; ties fall back
	// to creation order.
	DisplayOrder int    `gorm:"default:0" json:"displayOrder"`
	IsVisible    bool   `gorm:"default:true" json:"isVisible"`
	Icon         string `json:"icon"`

	MenuItems []MenuItem `json:"-"`
}
