package services

import (
	"errors"
	"regexp"
	"strings"

	"menucloud/entity"
	"menucloud/repository"
	"menucloud/utils"

	"gorm.io/gorm"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// SettingsService covers the tenant's theme settings and restaurant
// profile. The slug is immutable here; only onboarding sets it.
type SettingsService struct {
	RestRepo *repository.RestaurantRepository
}

func NewSettingsService(restRepo *repository.RestaurantRepository) *SettingsService {
	return &SettingsService{RestRepo: restRepo}
}

func (s *SettingsService) GetSettings(restaurantID uint) (*entity.RestaurantSettings, error) {
	settings, err := s.RestRepo.FindSettings(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return settings, nil
}

type SettingsUpdate struct {
	TemplateID       *string
	PrimaryColor     *string
	SecondaryColor   *string
	AccentColor      *string
	BackgroundColor  *string
	TextColor        *string
	FontHeading      *string
	FontBody         *string
	ShowPrices       *bool
	ShowDescriptions *bool
}

func (s *SettingsService) UpdateSettings(restaurantID uint, in SettingsUpdate) (*entity.RestaurantSettings, error) {
	if _, err := s.GetSettings(restaurantID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.TemplateID != nil {
		if !entity.ValidTemplate(*in.TemplateID) {
			return nil, ErrInvalidTemplate
		}
		fields["template_id"] = *in.TemplateID
	}

	colors := map[string]*string{
		"primary_color":    in.PrimaryColor,
		"secondary_color":  in.SecondaryColor,
		"accent_color":     in.AccentColor,
		"background_color": in.BackgroundColor,
		"text_color":       in.TextColor,
	}
	for col, v := range colors {
		if v == nil {
			continue
		}
		if !hexColor.MatchString(*v) {
			return nil, ErrValidation
		}
		fields[col] = strings.ToLower(*v)
	}

	if in.FontHeading != nil {
		font := utils.SanitizeInput(*in.FontHeading)
		if font == "" {
			return nil, ErrValidation
		}
		fields["font_heading"] = font
	}
	if in.FontBody != nil {
		font := utils.SanitizeInput(*in.FontBody)
		if font == "" {
			return nil, ErrValidation
		}
		fields["font_body"] = font
	}
	if in.ShowPrices != nil {
		fields["show_prices"] = *in.ShowPrices
	}
	if in.ShowDescriptions != nil {
		fields["show_descriptions"] = *in.ShowDescriptions
	}

	if len(fields) > 0 {
		if err := s.RestRepo.UpdateSettings(restaurantID, fields); err != nil {
			return nil, err
		}
	}
	return s.GetSettings(restaurantID)
}

func (s *SettingsService) GetRestaurant(restaurantID uint) (*entity.Restaurant, error) {
	rest, err := s.RestRepo.FindByID(restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rest, nil
}

type RestaurantUpdate struct {
	Name            *string
	Description     *string
	ContactEmail    *string
	ContactPhone    *string
	Address         *string
	FacebookURL     *string
	InstagramHandle *string
	TiktokHandle    *string
}

func (s *SettingsService) UpdateRestaurant(restaurantID uint, in RestaurantUpdate) (*entity.Restaurant, error) {
	if _, err := s.GetRestaurant(restaurantID); err != nil {
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
	if in.ContactEmail != nil {
		fields["contact_email"] = strings.TrimSpace(*in.ContactEmail)
	}
	if in.ContactPhone != nil {
		fields["contact_phone"] = strings.TrimSpace(*in.ContactPhone)
	}
	if in.Address != nil {
		fields["address"] = utils.SanitizeInput(*in.Address)
	}
	if in.FacebookURL != nil {
		fields["facebook_url"] = strings.TrimSpace(*in.FacebookURL)
	}
	if in.InstagramHandle != nil {
		fields["instagram_handle"] = strings.TrimPrefix(strings.TrimSpace(*in.InstagramHandle), "@")
	}
	if in.TiktokHandle != nil {
		fields["tiktok_handle"] = strings.TrimPrefix(strings.TrimSpace(*in.TiktokHandle), "@")
	}

	if len(fields) > 0 {
		if err := s.RestRepo.UpdateFields(restaurantID, fields); err != nil {
			return nil, err
		}
	}
	return s.GetRestaurant(restaurantID)
}
