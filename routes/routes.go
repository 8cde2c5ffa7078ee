package routes

import (
	"slices"
	"time"

	"shootdesk/config"
	"shootdesk/handlers"
	"shootdesk/middleware"
	"shootdesk/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var staffRoles = []string{models.RoleAdmin, models.RoleSuperadmin, models.RoleSalesRep}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterPublicRoutes registers the unauthenticated tour pages.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	public := r.Group("/public")
	{
		public.GET("/tours/:id/:variant", hb.Public.TourHandler)
	}
}

// RegisterShootRoutes registers the shoot board and shoot mutations.
func RegisterShootRoutes(dash *gin.RouterGroup, hb *handlers.HandlerBundle) {
	shootGroup := dash.Group("/shoots")
	{
		shootGroup.GET("", hb.Shoots.BoardHandler)
		shootGroup.POST("", hb.Shoots.BoardHandler)
		shootGroup.GET("/requested", hb.Shoots.RequestedHandler)
		shootGroup.GET("/pending-reviews", hb.Shoots.PendingReviewsHandler)
		shootGroup.GET("/counts", hb.Shoots.CountsHandler)
		shootGroup.GET("/weather", hb.Shoots.WeatherHandler)

		protected := shootGroup.Group("")
		protected.Use(middleware.RequireRoles(staffRoles...))
		protected.POST("/:id/assign", hb.Shoots.AssignHandler)
		protected.PATCH("/:id", hb.Shoots.UpdateHandler)
	}

	photographers := dash.Group("/photographers")
	{
		photographers.GET("/:id/timeline", hb.Availability.TimelineHandler)
		photographers.GET("/:id/next-availability", hb.Availability.NextAvailabilityHandler)
	}
}

// RegisterAccountRoutes registers account management and the viewer's profile.
func RegisterAccountRoutes(dash *gin.RouterGroup, hb *handlers.HandlerBundle) {
	dash.PUT("/profile", hb.Accounts.UpdateProfileHandler)

	accountGroup := dash.Group("/accounts")
	{
		accountGroup.Use(middleware.RequireRoles(staffRoles...))
		accountGroup.POST("", hb.Accounts.CreateAccountHandler)
		accountGroup.PUT("/:id", hb.Accounts.UpdateAccountHandler)
		accountGroup.GET("/import-template", hb.Accounts.ImportTemplateHandler)
		accountGroup.GET("/creators", middleware.RequireRoles(models.RoleSuperadmin), hb.Accounts.CreatorsHandler)
	}
}

// RegisterInboxRoutes registers notifications, issues and editing requests.
func RegisterInboxRoutes(dash *gin.RouterGroup, hb *handlers.HandlerBundle) {
	dash.GET("/notifications", hb.Notifications.FeedHandler)
	dash.POST("/notifications/approval", middleware.RequireRoles(staffRoles...), hb.Notifications.ApprovalHandler)

	dash.GET("/issues", hb.Issues.IssuesHandler)

	editing := dash.Group("/editing-requests")
	{
		editing.GET("", hb.Issues.EditingRequestsHandler)
		editing.PATCH("/:id", hb.Issues.UpdateEditingRequestHandler)
		editing.DELETE("/:id", hb.Issues.DeleteEditingRequestHandler)
	}
}

// corsConfig allows credentialed requests from origins. Browsers reject a literal
// "*" alongside credentials, so a wildcard echoes the caller's Origin instead.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowOriginFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig(config.AllowedOrigins())))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)

	dash := r.Group("/dash")
	dash.Use(middleware.DashboardAuthMiddleware(hb.Cache))
	dash.GET("/geo", middleware.GeolocationMiddleware(hb.Locator), handlers.GeoHandler)
	RegisterShootRoutes(dash, hb)
	RegisterAccountRoutes(dash, hb)
	RegisterInboxRoutes(dash, hb)
}
