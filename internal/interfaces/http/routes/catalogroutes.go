package routes

import (
	"github.com/gin-gonic/gin"

	"studium/internal/interfaces/http/handlers"
	"studium/internal/interfaces/http/middleware"
	"studium/internal/shared/authorization"
)

// CatalogRouteConfig holds dependencies for book and class routes.
type CatalogRouteConfig struct {
	BookHandler    *handlers.BookHandler
	ClassHandler   *handlers.ClassHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures the catalog. Reads are open to any
// authenticated account; book writes are staff-only and class writes
// belong to teachers and admins.
func SetupCatalogRoutes(api *gin.RouterGroup, cfg *CatalogRouteConfig) {
	books := api.Group("/books")
	books.Use(cfg.AuthMiddleware.RequireAuth())
	{
		books.GET("", cfg.BookHandler.List)
		books.GET("/:id", cfg.BookHandler.Get)
		books.GET("/:id/availability", cfg.BookHandler.Availability)

		books.GET("/export", authorization.RequireStaff(), cfg.BookHandler.Export)

		books.POST("", authorization.RequireStaff(), cfg.BookHandler.Create)
		books.PUT("/:id", authorization.RequireStaff(), cfg.BookHandler.Update)
		books.DELETE("/:id", authorization.RequireStaff(), cfg.BookHandler.Delete)
	}

	classes := api.Group("/classes")
	classes.Use(cfg.AuthMiddleware.RequireAuth())
	{
		classes.GET("", cfg.ClassHandler.List)
		classes.GET("/:id", cfg.ClassHandler.Get)
		classes.GET("/:id/availability", cfg.ClassHandler.Availability)
		classes.GET("/:id/feedback", cfg.ClassHandler.ListFeedback)
		classes.POST("/:id/feedback", cfg.ClassHandler.AddFeedback)

		classes.POST("", authorization.RequireClassManager(), cfg.ClassHandler.Create)
		classes.PUT("/:id", authorization.RequireClassManager(), cfg.ClassHandler.Update)
		classes.DELETE("/:id", authorization.RequireClassManager(), cfg.ClassHandler.Delete)
	}
}
