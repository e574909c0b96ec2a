package routes

import (
	"github.com/gin-gonic/gin"

	"studium/internal/interfaces/http/handlers"
	"studium/internal/interfaces/http/middleware"
	"studium/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for account lifecycle routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures the admin-only account endpoints.
func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		users.GET("/pending", cfg.UserHandler.ListPending)
		users.POST("/:id/approve", cfg.UserHandler.Approve)
		users.POST("/:id/suspend", cfg.UserHandler.Suspend)
	}
}
