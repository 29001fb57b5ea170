package controllers

import (
	"menucloud/pkg/resp"
	"menucloud/utils"

	"github.com/gin-gonic/gin"
)

// requireRestaurant rejects tenant users that have not finished onboarding
// yet; every menu/settings endpoint is scoped to the caller's restaurant.
func requireRestaurant(c *gin.Context) (uint, bool) {
	id := utils.CurrentRestaurantID(c)
	if id == 0 {
		resp.Forbidden(c, "onboarding required")
		return 0, false
	}
	return id, true
}
