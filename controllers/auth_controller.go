package controllers

import (
	"errors"
	"net/http"

	"menucloud/configs"
	"menucloud/entity"
	"menucloud/middlewares"
	"menucloud/pkg/resp"
	"menucloud/services"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
	Cfg  *configs.Config
}

func NewAuthController(auth *services.AuthService, cfg *configs.Config) *AuthController {
	return &AuthController{Auth: auth, Cfg: cfg}
}

func userPayload(u *entity.User) gin.H {
	return gin.H{
		"id":           u.ID,
		"email":        u.Email,
		"name":         u.Name,
		"role":         u.Role,
		"restaurantId": u.RestaurantID,
	}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := a.Auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "invalid email or password")
			return
		}
		resp.ServerError(c, err)
		return
	}

	a.setSessionCookie(c, token, int(a.Auth.SessionTTL().Seconds()))
	resp.OK(c, gin.H{"user": userPayload(user)})
}

// POST /auth/logout — idempotent, always clears the cookie.
func (a *AuthController) Logout(c *gin.Context) {
	token, _ := c.Cookie(middlewares.SessionCookieName)
	if err := a.Auth.Logout(token); err != nil {
		resp.ServerError(c, err)
		return
	}
	a.setSessionCookie(c, "", -1)
	resp.OK(c, gin.H{"message": "logged out"})
}

// GET /auth/session (behind auth middleware)
func (a *AuthController) Session(c *gin.Context) {
	token, _ := c.Cookie(middlewares.SessionCookieName)
	user, err := a.Auth.ResolveSession(token)
	if err != nil {
		resp.Unauthorized(c, "invalid or expired session")
		return
	}
	resp.OK(c, gin.H{"user": userPayload(user)})
}

func (a *AuthController) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookieName, token, maxAge, "/", "", a.Cfg.SessionSecure, true)
}
