package controllers

import (
	"errors"

	"menucloud/pkg/resp"
	"menucloud/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

// GET /settings
func (ctl *SettingsController) Get(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	settings, err := ctl.Settings.GetSettings(restID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "settings not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, settings)
}

type UpdateSettingsRequest struct {
	TemplateID       *string `json:"templateId"`
	PrimaryColor     *string `json:"primaryColor"`
	SecondaryColor   *string `json:"secondaryColor"`
	AccentColor      *string `json:"accentColor"`
	BackgroundColor  *string `json:"backgroundColor"`
	TextColor        *string `json:"textColor"`
	FontHeading      *string `json:"fontHeading"`
	FontBody         *string `json:"fontBody"`
	ShowPrices       *bool   `json:"showPrices"`
	ShowDescriptions *bool   `json:"showDescriptions"`
}

// PUT /settings
func (ctl *SettingsController) Update(c *gin.Context) {
	restID, ok := requireRestaurant(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	settings, err := ctl.Settings.UpdateSettings(restID, services.SettingsUpdate{
		TemplateID:       req.TemplateID,
		PrimaryColor:     req.PrimaryColor,
		SecondaryColor:   req.SecondaryColor,
		AccentColor:      req.AccentColor,
		BackgroundColor:  req.BackgroundColor,
		TextColor:        req.TextColor,
		FontHeading:      req.FontHeading,
		FontBody:         req.FontBody,
		ShowPrices:       req.ShowPrices,
		ShowDescriptions: req.ShowDescriptions,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "settings not found")
		case errors.Is(err, services.ErrInvalidTemplate):
			resp.BadRequest(c, "invalid template id")
		case errors.Is(err, services.ErrValidation):
			resp.BadRequest(c, "invalid settings: colors must be #rrggbb hex")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, settings)
}
