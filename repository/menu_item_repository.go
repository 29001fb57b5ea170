package repository

import (
	"menucloud/entity"

	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) ListByCategory(categoryID, restaurantID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category_id = ? AND restaurant_id = ?", categoryID, restaurantID).
		Order("display_order ASC, created_at ASC").
		Find(&items).Error
	return items, err
}

// ListByRestaurant returns every live item across categories in render
// order: category position first, then item position, then age.
func (r *MenuItemRepository) ListByRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Joins("JOIN categories ON categories.id = menu_items.category_id AND categories.deleted_at IS NULL").
		Where("menu_items.restaurant_id = ?", restaurantID).
		Order("categories.display_order ASC, menu_items.display_order ASC, menu_items.created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) ListVisibleByRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.
		Joins("JOIN categories ON categories.id = menu_items.category_id AND categories.deleted_at IS NULL").
		Where("menu_items.restaurant_id = ? AND menu_items.is_visible = ?", restaurantID, true).
		Order("categories.display_order ASC, menu_items.display_order ASC, menu_items.created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *MenuItemRepository) FindOwned(id, restaurantID uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuItemRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Updates(fields).Error
}

func (r *MenuItemRepository) SoftDelete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// SoftDeleteByCategoryTx tombstones every item of a category inside the
// cascade-delete transaction.
func (r *MenuItemRepository) SoftDeleteByCategoryTx(tx *gorm.DB, categoryID uint) error {
	return tx.Where("category_id = ?", categoryID).Delete(&entity.MenuItem{}).Error
}

func (r *MenuItemRepository) UpdateOrderTx(tx *gorm.DB, id, restaurantID, categoryID uint, order int) error {
	return tx.Model(&entity.MenuItem{}).
		Where("id = ? AND restaurant_id = ? AND category_id = ?", id, restaurantID, categoryID).
		Update("display_order", order).Error
}
