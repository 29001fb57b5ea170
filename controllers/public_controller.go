package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"menucloud/pkg/resp"
	"menucloud/services"

	"github.com/gin-gonic/gin"
)

// visitorCookie marks a browser that already counted as a unique visitor.
const visitorCookie = "mc_v"

type PublicController struct {
	Public *services.PublicService
	Usage  *services.UsageService
}

func NewPublicController(public *services.PublicService, usage *services.UsageService) *PublicController {
	return &PublicController{Public: public, Usage: usage}
}

// GET /:slug — the published menu. Any resolution failure is a plain 404;
// the response never distinguishes paused from nonexistent.
func (ctl *PublicController) Menu(c *gin.Context) {
	slug := c.Param("slug")

	menu, err := ctl.Public.MenuBySlug(slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	body, err := json.Marshal(gin.H{"ok": true, "data": menu})
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	unique := false
	if _, err := c.Cookie(visitorCookie); err != nil {
		unique = true
		c.SetCookie(visitorCookie, "1", 86400, "/", "", false, true)
	}

	// tracking never blocks or fails the page
	go ctl.Usage.TrackBandwidth(menu.RestaurantID, int64(len(body)), unique)

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
