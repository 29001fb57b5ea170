package repository

import (
	"time"

	"menucloud/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// CategorySummary is what the tenant menu editor lists.
type CategorySummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"displayOrder"`
	IsVisible    bool      `json:"isVisible"`
	Icon         string    `json:"icon"`
	CreatedAt    time.Time `json:"createdAt"`
	ItemsCount   int64     `json:"itemsCount"`
}

func (r *CategoryRepository) ListByRestaurant(restaurantID uint) ([]CategorySummary, error) {
	var out []CategorySummary
	err := r.DB.Model(&entity.Category{}).
		Select(`categories.id, categories.name, categories.description,
			categories.display_order, categories.is_visible, categories.icon,
			categories.created_at,
			(SELECT COUNT(*) FROM menu_items
				WHERE menu_items.category_id = categories.id
				AND menu_items.deleted_at IS NULL) AS items_count`).
		Where("categories.restaurant_id = ?", restaurantID).
		Order("categories.display_order ASC, categories.created_at ASC").
		Scan(&out).Error
	return out, err
}

func (r *CategoryRepository) ListVisibleByRestaurant(restaurantID uint) ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Where("restaurant_id = ? AND is_visible = ?", restaurantID, true).
		Order("display_order ASC, created_at ASC").
		Find(&cats).Error
	return cats, err
}

// FindOwned resolves a category only when it belongs to the given
// restaurant; anything else reads as record-not-found.
func (r *CategoryRepository) FindOwned(id, restaurantID uint) (*entity.Category, error) {
	var cat entity.Category
	err := r.DB.Where("id = ? AND restaurant_id = ?", id, restaurantID).First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(fields).Error
}

func (r *CategoryRepository) SoftDeleteTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Category{}, id).Error
}

// UpdateOrderTx writes one positional display_order, scoped to the owning
// restaurant so foreign IDs in a reorder batch touch nothing.
func (r *CategoryRepository) UpdateOrderTx(tx *gorm.DB, id, restaurantID uint, order int) error {
	return tx.Model(&entity.Category{}).
		Where("id = ? AND restaurant_id = ?", id, restaurantID).
		Update("display_order", order).Error
}
