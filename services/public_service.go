package services

import (
	"errors"

	"menucloud/repository"

	"gorm.io/gorm"
)

// PublicService resolves the visitor-facing menu for a slug. Every failure
// mode (unknown slug, deleted, inactive, paused) is the same ErrNotFound so
// the public surface never reveals why a menu is gone.
type PublicService struct {
	RestRepo *repository.RestaurantRepository
	CatRepo  *repository.CategoryRepository
	ItemRepo *repository.MenuItemRepository
}

func NewPublicService(restRepo *repository.RestaurantRepository, catRepo *repository.CategoryRepository, itemRepo *repository.MenuItemRepository) *PublicService {
	return &PublicService{RestRepo: restRepo, CatRepo: catRepo, ItemRepo: itemRepo}
}

type PublicItem struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	BasePrice   *float64 `json:"basePrice"`
	IsFeatured  bool     `json:"isFeatured"`
}

type PublicCategory struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Icon        string       `json:"icon"`
	Items       []PublicItem `json:"items"`
}

type PublicTheme struct {
	TemplateID       string `json:"templateId"`
	PrimaryColor     string `json:"primaryColor"`
	SecondaryColor   string `json:"secondaryColor"`
	AccentColor      string `json:"accentColor"`
	BackgroundColor  string `json:"backgroundColor"`
	TextColor        string `json:"textColor"`
	FontHeading      string `json:"fontHeading"`
	FontBody         string `json:"fontBody"`
	ShowPrices       bool   `json:"showPrices"`
	ShowDescriptions bool   `json:"showDescriptions"`
}

type PublicMenu struct {
	RestaurantID uint             `json:"-"`
	Name         string           `json:"name"`
	Slug         string           `json:"slug"`
	Description  string           `json:"description"`
	ContactPhone string           `json:"contactPhone"`
	Address      string           `json:"address"`
	Theme        PublicTheme      `json:"theme"`
	Categories   []PublicCategory `json:"categories"`
}

// MenuBySlug loads the published menu: visible categories in display order,
// each with its visible items in display order.
func (s *PublicService) MenuBySlug(slug string) (*PublicMenu, error) {
	rest, err := s.RestRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !rest.IsActive || rest.Paused() {
		return nil, ErrNotFound
	}

	settings, err := s.RestRepo.FindSettings(rest.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	cats, err := s.CatRepo.ListVisibleByRestaurant(rest.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.ItemRepo.ListVisibleByRestaurant(rest.ID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[uint][]PublicItem, len(cats))
	for _, it := range items {
		byCategory[it.CategoryID] = append(byCategory[it.CategoryID], PublicItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			BasePrice:   it.BasePrice,
			IsFeatured:  it.IsFeatured,
		})
	}

	menu := &PublicMenu{
		RestaurantID: rest.ID,
		Name:         rest.Name,
		Slug:         rest.Slug,
		Description:  rest.Description,
		ContactPhone: rest.ContactPhone,
		Address:      rest.Address,
		Theme: PublicTheme{
			TemplateID:       settings.TemplateID,
			PrimaryColor:     settings.PrimaryColor,
			SecondaryColor:   settings.SecondaryColor,
			AccentColor:      settings.AccentColor,
			BackgroundColor:  settings.BackgroundColor,
			TextColor:        settings.TextColor,
			FontHeading:      settings.FontHeading,
			FontBody:         settings.FontBody,
			ShowPrices:       settings.ShowPrices,
			ShowDescriptions: settings.ShowDescriptions,
		},
		Categories: make([]PublicCategory, 0, len(cats)),
	}
	for _, cat := range cats {
		pc := PublicCategory{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Icon:        cat.Icon,
			Items:       byCategory[cat.ID],
		}
		if pc.Items == nil {
			pc.Items = []PublicItem{}
		}
		menu.Categories = append(menu.Categories, pc)
	}
	return menu, nil
}
