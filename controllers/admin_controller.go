package controllers

import (
	"errors"
	"strconv"

	"menucloud/pkg/resp"
	"menucloud/services"
	"menucloud/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Tenants    *services.TenantService
	Onboarding *services.OnboardingService
}

func NewAdminController(tenants *services.TenantService, onboarding *services.OnboardingService) *AdminController {
	return &AdminController{Tenants: tenants, Onboarding: onboarding}
}

// GET /admin/tenants
func (ctl *AdminController) ListTenants(c *gin.Context) {
	rows, err := ctl.Tenants.ListTenants()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"tenants": rows})
}

// GET /admin/users — all live accounts, super admins included.
func (ctl *AdminController) ListUsers(c *gin.Context) {
	users, err := ctl.Tenants.ListUsers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

type CreateTenantRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
}

// POST /admin/tenants — shell user; the tenant finishes onboarding on
// first login.
func (ctl *AdminController) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Onboarding.CreatePendingTenant(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.Conflict(c, "email already registered")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
		"requiresOnboarding": true,
	})
}

type PauseTenantRequest struct {
	Reason string `json:"reason"`
}

// POST /admin/tenants/:id/pause
func (ctl *AdminController) PauseTenant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid tenant id")
		return
	}

	var req PauseTenantRequest
	// body is optional
	_ = c.ShouldBindJSON(&req)

	if err := ctl.Tenants.PauseTenant(uint(id), req.Reason); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "tenant not found")
		case errors.Is(err, services.ErrNotOnboarded):
			resp.BadRequest(c, "tenant has not completed onboarding")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "tenant paused"})
}

// POST /admin/tenants/:id/unpause
func (ctl *AdminController) UnpauseTenant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid tenant id")
		return
	}

	if err := ctl.Tenants.UnpauseTenant(uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "tenant not found")
		case errors.Is(err, services.ErrNotOnboarded):
			resp.BadRequest(c, "tenant has not completed onboarding")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "tenant unpaused"})
}

// DELETE /admin/users/:id
func (ctl *AdminController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}

	callerID := utils.CurrentUserID(c)
	if err := ctl.Tenants.DeleteUser(callerID, uint(id)); err != nil {
		switch {
		case errors.Is(err, services.ErrSelfDeletion):
			resp.BadRequest(c, "cannot delete your own account")
		case errors.Is(err, services.ErrLastSuperAdmin):
			resp.BadRequest(c, "cannot delete the last super admin")
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "user not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"message": "user deleted"})
}

// GET /admin/analytics/overview
func (ctl *AdminController) AnalyticsOverview(c *gin.Context) {
	overview, err := ctl.Tenants.Overview()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, overview)
}
