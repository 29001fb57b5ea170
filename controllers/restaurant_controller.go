package controllers

import (
	"errors"

	"menucloud/pkg/resp"
	"menucloud/services"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Settings *services.SettingsService
}

func NewRestaurantController(settings *services.SettingsService) *RestaurantController {
	return &RestaurantController{Settings: settings}
}

// GET /restaurant/info
func (ctl *RestaurantController) Info(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	rest, err := ctl.Settings.GetRestaurant(restID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "restaurant not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rest)
}

type UpdateRestaurantRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	ContactEmail    *string `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone    *string `json:"contactPhone"`
	Address         *string `json:"address"`
	FacebookURL     *string `json:"facebookUrl" binding:"omitempty,url"`
	InstagramHandle *string `json:"instagramHandle"`
	TiktokHandle    *string `json:"tiktokHandle"`
}

// PUT /restaurant/info — the slug is immutable and not accepted here.
func (ctl *RestaurantController) Update(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ctl.Settings.UpdateRestaurant(restID, services.RestaurantUpdate{
		Name:            req.Name,
		Description:     req.Description,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Address:         req.Address,
		FacebookURL:     req.FacebookURL,
		InstagramHandle: req.InstagramHandle,
		TiktokHandle:    req.TiktokHandle,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "restaurant not found")
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "restaurant name cannot be empty")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, rest)
}
