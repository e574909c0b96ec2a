package routes

import (
	"github.com/gin-gonic/gin"

	"studium/internal/interfaces/http/handlers"
	"studium/internal/interfaces/http/middleware"
	"studium/internal/shared/authorization"
)

// ActivityRouteConfig holds dependencies for the activity feed routes.
type ActivityRouteConfig struct {
	ActivityHandler *handlers.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupActivityRoutes configures the admin-only activity feed.
func SetupActivityRoutes(api *gin.RouterGroup, cfg *ActivityRouteConfig) {
	activities := api.Group("/activities")
	activities.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		activities.GET("", cfg.ActivityHandler.List)
	}
}
