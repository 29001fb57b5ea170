package controllers

import (
	"errors"

	"menucloud/pkg/resp"
	"menucloud/services"
	"menucloud/utils"

	"github.com/gin-gonic/gin"
)

type CompleteOnboardingRequest struct {
	FullName        string `json:"fullName" binding:"required,min=2,max=100"`
	RestaurantName  string `json:"restaurantName" binding:"required,min=2,max=100"`
	Slug            string `json:"slug" binding:"required,min=3,max=50"`
	Description     string `json:"description" binding:"max=500"`
	ContactEmail    string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone    string `json:"contactPhone" binding:"max=20"`
	Address         string `json:"address" binding:"max=200"`
	FacebookURL     string `json:"facebookUrl" binding:"omitempty,url"`
	InstagramHandle string `json:"instagramHandle"`
	TiktokHandle    string `json:"tiktokHandle"`
	TemplateID      string `json:"templateId" binding:"required"`
}

type OnboardingController struct {
	Onboarding *services.OnboardingService
}

func NewOnboardingController(svc *services.OnboardingService) *OnboardingController {
	return &OnboardingController{Onboarding: svc}
}

// POST /onboarding/complete
func (o *OnboardingController) Complete(c *gin.Context) {
	var req CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	userID := utils.CurrentUserID(c)
	rest, err := o.Onboarding.CompleteOnboarding(userID, services.OnboardingInput{
		FullName:        req.FullName,
		RestaurantName:  req.RestaurantName,
		Slug:            req.Slug,
		Description:     req.Description,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Address:         req.Address,
		FacebookURL:     req.FacebookURL,
		InstagramHandle: req.InstagramHandle,
		TiktokHandle:    req.TiktokHandle,
		TemplateID:      req.TemplateID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyOnboarded):
			resp.BadRequest(c, "onboarding already completed")
		case errors.Is(err, services.ErrInvalidSlug):
			resp.BadRequest(c, "invalid slug format")
		case errors.Is(err, services.ErrInvalidTemplate):
			resp.BadRequest(c, "invalid template id")
		case errors.Is(err, services.ErrSlugTaken):
			resp.Conflict(c, "slug already in use")
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "validation failed")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{
		"restaurant": gin.H{
			"id":   rest.ID,
			"name": rest.Name,
			"slug": rest.Slug,
		},
	})
}

// GET /onboarding/check-slug?slug=
func (o *OnboardingController) CheckSlug(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		resp.BadRequest(c, "slug query parameter required")
		return
	}

	check, err := o.Onboarding.CheckSlug(slug)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, check)
}
