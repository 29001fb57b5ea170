package configs

import (
	"log"
	"strings"

	"menucloud/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedSuperAdmin bootstraps the first super_admin from env on startup.
func SeedSuperAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding super admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("super admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Super Admin",
		Role:         entity.RoleSuperAdmin,
	}
	return db.Create(&admin).Error
}
