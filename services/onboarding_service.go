package services

import (
	"errors"
	"strings"

	"menucloud/entity"
	"menucloud/repository"
	"menucloud/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// OnboardingService drives the one-time PENDING → COMPLETE transition that
// turns a bare user into a user + restaurant + settings triple.
type OnboardingService struct {
	DB       *gorm.DB
	UserRepo *repository.UserRepository
	RestRepo *repository.RestaurantRepository
}

func NewOnboardingService(db *gorm.DB, userRepo *repository.UserRepository, restRepo *repository.RestaurantRepository) *OnboardingService {
	return &OnboardingService{DB: db, UserRepo: userRepo, RestRepo: restRepo}
}

type OnboardingInput struct {
	FullName        string
	RestaurantName  string
	Slug            string
	Description     string
	ContactEmail    string
	ContactPhone    string
	Address         string
	FacebookURL     string
	InstagramHandle string
	TiktokHandle    string
	TemplateID      string
}

// CompleteOnboarding creates the restaurant, its settings and links the
// user, all in one transaction. A second call for the same user is an
// error, never a silent no-op.
func (s *OnboardingService) CompleteOnboarding(userID uint, in OnboardingInput) (*entity.Restaurant, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.RestaurantID != nil {
		return nil, ErrAlreadyOnboarded
	}

	if !utils.ValidateSlugFormat(in.Slug) {
		return nil, ErrInvalidSlug
	}
	if !entity.ValidTemplate(in.TemplateID) {
		return nil, ErrInvalidTemplate
	}

	taken, err := s.RestRepo.CountBySlug(in.Slug)
	if err != nil {
		return nil, err
	}
	if taken > 0 {
		return nil, ErrSlugTaken
	}

	rest := &entity.Restaurant{
		OwnerID:             user.ID,
		Name:                utils.SanitizeInput(in.RestaurantName),
		Slug:                in.Slug,
		Description:         utils.SanitizeInput(in.Description),
		ContactEmail:        strings.TrimSpace(in.ContactEmail),
		ContactPhone:        strings.TrimSpace(in.ContactPhone),
		Address:             utils.SanitizeInput(in.Address),
		FacebookURL:         strings.TrimSpace(in.FacebookURL),
		InstagramHandle:     strings.TrimPrefix(strings.TrimSpace(in.InstagramHandle), "@"),
		TiktokHandle:        strings.TrimPrefix(strings.TrimSpace(in.TiktokHandle), "@"),
		IsActive:            true,
		OnboardingCompleted: true,
	}
	if rest.Name == "" {
		return nil, ErrValidation
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.RestRepo.CreateTx(tx, rest); err != nil {
			return err
		}

		settings := entity.DefaultSettings(rest.ID, in.TemplateID)
		if err := s.RestRepo.CreateSettingsTx(tx, &settings); err != nil {
			return err
		}

		return s.UserRepo.CompleteOnboardingTx(tx, user.ID, rest.ID, utils.SanitizeInput(in.FullName))
	})
	if err != nil {
		return nil, err
	}
	return rest, nil
}

type SlugCheck struct {
	Slug      string `json:"slug"`
	Valid     bool   `json:"valid"`
	Available bool   `json:"available"`
}

// CheckSlug reports format validity and availability for live slugs.
func (s *OnboardingService) CheckSlug(slug string) (SlugCheck, error) {
	out := SlugCheck{Slug: slug, Valid: utils.ValidateSlugFormat(slug)}
	if !out.Valid {
		return out, nil
	}
	count, err := s.RestRepo.CountBySlug(slug)
	if err != nil {
		return out, err
	}
	out.Available = count == 0
	return out, nil
}

// CreatePendingTenant is the admin-side shell-user path: a tenant_user with
// no restaurant, to finish onboarding on first login.
func (s *OnboardingService) CreatePendingTenant(email, password, name string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.UserRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         utils.SanitizeInput(name),
		Role:         entity.RoleTenantUser,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}
