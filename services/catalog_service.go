package services

import (
	"errors"

	"menucloud/entity"
	"menucloud/repository"
	"menucloud/utils"

	"gorm.io/gorm"
)

// CatalogService owns the tenant-facing menu editor: categories, items,
// cascading soft delete and reordering. Every operation is scoped by the
// caller's restaurant_id; rows of other tenants read as not-found.
type CatalogService struct {
	DB       *gorm.DB
	CatRepo  *repository.CategoryRepository
	ItemRepo *repository.MenuItemRepository
}

func NewCatalogService(db *gorm.DB, catRepo *repository.CategoryRepository, itemRepo *repository.MenuItemRepository) *CatalogService {
	return &CatalogService{DB: db, CatRepo: catRepo, ItemRepo: itemRepo}
}

// ---------------- Categories ----------------

func (s *CatalogService) ListCategories(restaurantID uint) ([]repository.CategorySummary, error) {
	return s.CatRepo.ListByRestaurant(restaurantID)
}

type CategoryInput struct {
	Name         string
	Description  string
	Icon         string
	DisplayOrder int
	IsVisible    bool
}

func (s *CatalogService) CreateCategory(restaurantID uint, in CategoryInput) (*entity.Category, error) {
	name := utils.SanitizeInput(in.Name)
	if name == "" {
		return nil, ErrValidation
	}

	cat := &entity.Category{
		RestaurantID: restaurantID,
		Name:         name,
		Description:  utils.SanitizeInput(in.Description),
		Icon:         utils.SanitizeInput(in.Icon),
		DisplayOrder: in.DisplayOrder,
		IsVisible:    in.IsVisible,
	}
	if err := s.CatRepo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

type CategoryUpdate struct {
	Name         *string
	Description  *string
	Icon         *string
	DisplayOrder *int
	IsVisible    *bool
}

func (s *CatalogService) UpdateCategory(restaurantID, id uint, in CategoryUpdate) (*entity.Category, error) {
	if _, err := s.ownedCategory(id, restaurantID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		name := utils.SanitizeInput(*in.Name)
		if name == "" {
			return nil, ErrValidation
		}
		fields["name"] = name
	}
	if in.Description != nil {
		fields["description"] = utils.SanitizeInput(*in.Description)
	}
	if in.Icon != nil {
		fields["icon"] = utils.SanitizeInput(*in.Icon)
	}
	if in.DisplayOrder != nil {
		fields["display_order"] = *in.DisplayOrder
	}
	if in.IsVisible != nil {
		fields["is_visible"] = *in.IsVisible
	}

	if len(fields) > 0 {
		if err := s.CatRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.CatRepo.FindOwned(id, restaurantID)
}

// DeleteCategory tombstones the category and every item under it as one
// atomic operation.
func (s *CatalogService) DeleteCategory(restaurantID, id uint) error {
	if _, err := s.ownedCategory(id, restaurantID); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ItemRepo.SoftDeleteByCategoryTx(tx, id); err != nil {
			return err
		}
		return s.CatRepo.SoftDeleteTx(tx, id)
	})
}

// ReorderCategories assigns display_order by position in the submitted
// list, inside one transaction. IDs that do not belong to the restaurant
// are skipped, not errored; omitted IDs keep their old order.
func (s *CatalogService) ReorderCategories(restaurantID uint, orderedIDs []uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := s.CatRepo.UpdateOrderTx(tx, id, restaurantID, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// ---------------- Menu items ----------------

func (s *CatalogService) ListItems(restaurantID uint, categoryID uint) ([]entity.MenuItem, error) {
	if categoryID != 0 {
		if _, err := s.ownedCategory(categoryID, restaurantID); err != nil {
			return nil, err
		}
		return s.ItemRepo.ListByCategory(categoryID, restaurantID)
	}
	return s.ItemRepo.ListByRestaurant(restaurantID)
}

type MenuItemInput struct {
	CategoryID   uint
	Name         string
	Description  string
	BasePrice    *float64
	DisplayOrder int
	IsVisible    bool
	IsFeatured   bool
}

func (s *CatalogService) CreateItem(restaurantID uint, in MenuItemInput) (*entity.MenuItem, error) {
	// category must be live and owned by the caller
	if _, err := s.ownedCategory(in.CategoryID, restaurantID); err != nil {
		return nil, err
	}

	name := utils.SanitizeInput(in.Name)
	if name == "" {
		return nil, ErrValidation
	}
	if in.BasePrice != nil && *in.BasePrice < 0 {
		return nil, ErrValidation
	}

	item := &entity.MenuItem{
		CategoryID:   in.CategoryID,
		RestaurantID: restaurantID,
		Name:         name,
		Description:  utils.SanitizeInput(in.Description),
		BasePrice:    in.BasePrice,
		DisplayOrder: in.DisplayOrder,
		IsVisible:    in.IsVisible,
		IsFeatured:   in.IsFeatured,
	}
	if err := s.ItemRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

type MenuItemUpdate struct {
	CategoryID   *uint
	Name         *string
	Description  *string
	BasePrice    *float64
	ClearPrice   bool
	DisplayOrder *int
	IsVisible    *bool
	IsFeatured   *bool
}

func (s *CatalogService) UpdateItem(restaurantID, id uint, in MenuItemUpdate) (*entity.MenuItem, error) {
	if _, err := s.ownedItem(id, restaurantID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.CategoryID != nil {
		// reparenting is only allowed within the same restaurant
		if _, err := s.ownedCategory(*in.CategoryID, restaurantID); err != nil {
			return nil, err
		}
		fields["category_id"] = *in.CategoryID
	}
	if in.Name != nil {
		name := utils.SanitizeInput(*in.Name)
		if name == "" {
			return nil, ErrValidation
		}
		fields["name"] = name
	}
	if in.Description != nil {
		fields["description"] = utils.SanitizeInput(*in.Description)
	}
	if in.BasePrice != nil {
		if *in.BasePrice < 0 {
			return nil, ErrValidation
		}
		fields["base_price"] = *in.BasePrice
	} else if in.ClearPrice {
		fields["base_price"] = nil
	}
	if in.DisplayOrder != nil {
		fields["display_order"] = *in.DisplayOrder
	}
	if in.IsVisible != nil {
		fields["is_visible"] = *in.IsVisible
	}
	if in.IsFeatured != nil {
		fields["is_featured"] = *in.IsFeatured
	}

	if len(fields) > 0 {
		if err := s.ItemRepo.UpdateFields(id, fields); err != nil {
			return nil, err
		}
	}
	return s.ItemRepo.FindOwned(id, restaurantID)
}

func (s *CatalogService) DeleteItem(restaurantID, id uint) error {
	if _, err := s.ownedItem(id, restaurantID); err != nil {
		return err
	}
	return s.ItemRepo.SoftDelete(id)
}

// ReorderItems: same contract as ReorderCategories, additionally scoped to
// one category — an item outside that category is skipped, never
// reassigned.
func (s *CatalogService) ReorderItems(restaurantID, categoryID uint, orderedIDs []uint) error {
	if _, err := s.ownedCategory(categoryID, restaurantID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := s.ItemRepo.UpdateOrderTx(tx, id, restaurantID, categoryID, i); err != nil {
				return err
			}
		}
		return nil
	})
}

// ---------------- helpers ----------------

func (s *CatalogService) ownedCategory(id, restaurantID uint) (*entity.Category, error) {
	cat, err := s.CatRepo.FindOwned(id, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cat, nil
}

func (s *CatalogService) ownedItem(id, restaurantID uint) (*entity.MenuItem, error) {
	item, err := s.ItemRepo.FindOwned(id, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}
