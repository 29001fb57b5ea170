package services

import (
	"testing"

	"menucloud/configs"
	"menucloud/entity"
	"menucloud/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, configs.SetupDatabase(db))
	return db
}

func newRepos(db *gorm.DB) (*repository.UserRepository, *repository.SessionRepository, *repository.RestaurantRepository, *repository.CategoryRepository, *repository.MenuItemRepository, *repository.UsageRepository) {
	return repository.NewUserRepository(db),
		repository.NewSessionRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewMenuItemRepository(db),
		repository.NewUsageRepository(db)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// createPendingUser inserts a tenant_user that has not onboarded yet.
func createPendingUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:        email,
		PasswordHash: hashPassword(t, "password123"),
		Name:         "Pending Tenant",
		Role:         entity.RoleTenantUser,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createSuperAdmin(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:        email,
		PasswordHash: hashPassword(t, "admin-password"),
		Name:         "Admin",
		Role:         entity.RoleSuperAdmin,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// createTenant builds a fully onboarded user + restaurant + settings triple.
func createTenant(t *testing.T, db *gorm.DB, email, slug string) (*entity.User, *entity.Restaurant) {
	t.Helper()
	u := createPendingUser(t, db, email)

	rest := &entity.Restaurant{
		OwnerID:             u.ID,
		Name:                "Test Restaurant " + slug,
		Slug:                slug,
		IsActive:            true,
		OnboardingCompleted: true,
	}
	require.NoError(t, db.Create(rest).Error)

	settings := entity.DefaultSettings(rest.ID, entity.TemplateClassic)
	require.NoError(t, db.Create(&settings).Error)

	require.NoError(t, db.Model(u).Update("restaurant_id", rest.ID).Error)
	u.RestaurantID = &rest.ID
	return u, rest
}
