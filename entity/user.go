package entity

import (
	"gorm.io/gorm"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleTenantUser = "tenant_user"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         string `gorm:"not null;default:tenant_user" json:"role"`

	// nil ⇒ tenant has not completed onboarding yet
	RestaurantID *uint       `json:"restaurantId"`
	Restaurant   *Restaurant `json:"-"`

	Sessions []Session `json:"-"`
}
