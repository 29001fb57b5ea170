package routes

import (
	"menucloud/configs"
	"menucloud/controllers"
	"menucloud/entity"
	"menucloud/middlewares"
	"menucloud/repository"
	"menucloud/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers onto the
// engine. It returns the auth service so main can run the session sweep.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) *services.AuthService {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	catRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)
	usageRepo := repository.NewUsageRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, sessionRepo, cfg.SessionMaxAge)
	onboardingSvc := services.NewOnboardingService(db, userRepo, restRepo)
	catalogSvc := services.NewCatalogService(db, catRepo, itemRepo)
	settingsSvc := services.NewSettingsService(restRepo)
	tenantSvc := services.NewTenantService(userRepo, restRepo, usageRepo, sessionRepo)
	usageSvc := services.NewUsageService(usageRepo)
	publicSvc := services.NewPublicService(restRepo, catRepo, itemRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc, cfg)
	onboardingCtrl := controllers.NewOnboardingController(onboardingSvc)
	categoryCtrl := controllers.NewCategoryController(catalogSvc)
	itemCtrl := controllers.NewMenuItemController(catalogSvc)
	settingsCtrl := controllers.NewSettingsController(settingsSvc)
	restCtrl := controllers.NewRestaurantController(settingsSvc)
	adminCtrl := controllers.NewAdminController(tenantSvc, onboardingSvc)
	publicCtrl := controllers.NewPublicController(publicSvc, usageSvc)

	authRequired := middlewares.AuthMiddleware(authSvc)
	tenantOnly := middlewares.AuthMiddleware(authSvc, entity.RoleTenantUser)
	adminOnly := middlewares.AuthMiddleware(authSvc, entity.RoleSuperAdmin)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
		a.POST("/logout", authCtrl.Logout)
		a.GET("/session", authRequired, authCtrl.Session)
	}

	// Onboarding (tenant, pre-restaurant)
	onboarding := r.Group("/onboarding", tenantOnly)
	{
		onboarding.POST("/complete", onboardingCtrl.Complete)
		onboarding.GET("/check-slug", onboardingCtrl.CheckSlug)
	}

	// Menu editor (tenant)
	menu := r.Group("/menu", tenantOnly)
	{
		menu.GET("/categories", categoryCtrl.List)
		menu.POST("/categories", categoryCtrl.Create)
		menu.POST("/categories/reorder", categoryCtrl.Reorder)
		menu.PATCH("/categories/:id", categoryCtrl.Update)
		menu.DELETE("/categories/:id", categoryCtrl.Delete)

		menu.GET("/items", itemCtrl.List)
		menu.POST("/items", itemCtrl.Create)
		menu.POST("/items/reorder", itemCtrl.Reorder)
		menu.PATCH("/items/:id", itemCtrl.Update)
		menu.DELETE("/items/:id", itemCtrl.Delete)
	}

	// Theme + profile (tenant)
	r.GET("/settings", tenantOnly, settingsCtrl.Get)
	r.PUT("/settings", tenantOnly, settingsCtrl.Update)
	r.GET("/restaurant/info", tenantOnly, restCtrl.Info)
	r.PUT("/restaurant/info", tenantOnly, restCtrl.Update)

	// Admin (super_admin)
	admin := r.Group("/admin", adminOnly)
	{
		admin.GET("/tenants", adminCtrl.ListTenants)
		admin.POST("/tenants", adminCtrl.CreateTenant)
		admin.POST("/tenants/:id/pause", adminCtrl.PauseTenant)
		admin.POST("/tenants/:id/unpause", adminCtrl.UnpauseTenant)
		admin.GET("/users", adminCtrl.ListUsers)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
		admin.GET("/analytics/overview", adminCtrl.AnalyticsOverview)
	}

	// Public menu by slug (no auth)
	r.GET("/:slug", publicCtrl.Menu)

	return authSvc
}
