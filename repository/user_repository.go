package repository

import (
	"time"

	"menucloud/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

// FindByEmail only matches non-deleted users (gorm soft-delete scope).
func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindTenantByID(id uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.Where("id = ? AND role = ?", id, entity.RoleTenantUser).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CountByEmail counts tombstoned rows too: the unique index on email
// covers them, so a scoped count would let an insert through that the
// index then rejects.
func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Unscoped().Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) CountSuperAdmins() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("role = ?", entity.RoleSuperAdmin).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) CountTenants() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("role = ?", entity.RoleTenantUser).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) CountPendingOnboarding() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).
		Where("role = ? AND restaurant_id IS NULL", entity.RoleTenantUser).
		Count(&count).Error
	return count, err
}

// UserAccount is one line of the admin account list, any role.
type UserAccount struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	RestaurantID   *uint     `json:"restaurantId"`
	RestaurantName string    `json:"restaurantName,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListAll returns every live user account, super admins included,
// newest first.
func (r *UserRepository) ListAll() ([]UserAccount, error) {
	var out []UserAccount
	err := r.DB.Model(&entity.User{}).
		Select(`users.id, users.email, users.name, users.role,
			users.restaurant_id, COALESCE(restaurants.name, '') AS restaurant_name,
			users.created_at`).
		Joins("LEFT JOIN restaurants ON restaurants.id = users.restaurant_id AND restaurants.deleted_at IS NULL").
		Order("users.created_at DESC").
		Scan(&out).Error
	return out, err
}

// ListTenants returns all non-deleted tenant users, newest first.
func (r *UserRepository) ListTenants() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("role = ?", entity.RoleTenantUser).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

// CompleteOnboardingTx links the user to its new restaurant and records the
// full name collected during onboarding. Runs inside the onboarding
// transaction.
func (r *UserRepository) CompleteOnboardingTx(tx *gorm.DB, userID, restaurantID uint, name string) error {
	return tx.Model(&entity.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"restaurant_id": restaurantID,
			"name":          name,
		}).Error
}

func (r *UserRepository) SoftDelete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}
