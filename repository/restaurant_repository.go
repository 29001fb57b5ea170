package repository

import (
	"menucloud/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) CreateTx(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindBySlug(slug string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("slug = ?", slug).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// CountBySlug checks slug collisions against non-deleted rows only.
func (r *RestaurantRepository) CountBySlug(slug string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("slug = ?", slug).Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(fields).Error
}

func (r *RestaurantRepository) FindSettings(restaurantID uint) (*entity.RestaurantSettings, error) {
	var s entity.RestaurantSettings
	err := r.DB.Where("restaurant_id = ?", restaurantID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RestaurantRepository) CreateSettingsTx(tx *gorm.DB, s *entity.RestaurantSettings) error {
	return tx.Create(s).Error
}

func (r *RestaurantRepository) UpdateSettings(restaurantID uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.RestaurantSettings{}).
		Where("restaurant_id = ?", restaurantID).
		Updates(fields).Error
}

// CountActive counts restaurants that are live on their public URL.
func (r *RestaurantRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("is_active = ? AND paused_at IS NULL", true).
		Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) CountPaused() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("paused_at IS NOT NULL").
		Count(&count).Error
	return count, err
}
