package routes

import (
	"github.com/gin-gonic/gin"

	"studium/internal/interfaces/http/handlers"
	"studium/internal/interfaces/http/middleware"
	"studium/internal/shared/authorization"
)

// WorkflowRouteConfig holds dependencies for request and allocation routes.
type WorkflowRouteConfig struct {
	RequestHandler    *handlers.RequestHandler
	AllocationHandler *handlers.AllocationHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupWorkflowRoutes configures the allocation workflow. Decisions and
// the overdue view are gated to staff; release and extension permission
// is checked in the use case because holders may act on their own
// allocations.
func SetupWorkflowRoutes(api *gin.RouterGroup, cfg *WorkflowRouteConfig) {
	requests := api.Group("/requests")
	requests.Use(cfg.AuthMiddleware.RequireAuth())
	{
		requests.POST("", cfg.RequestHandler.Submit)
		requests.GET("", cfg.RequestHandler.ListMine)

		requests.GET("/pending", authorization.RequireStaff(), cfg.RequestHandler.ListPending)
		requests.POST("/:id/approve", authorization.RequireStaff(), cfg.RequestHandler.Approve)
		requests.POST("/:id/reject", authorization.RequireStaff(), cfg.RequestHandler.Reject)
	}

	allocations := api.Group("/allocations")
	allocations.Use(cfg.AuthMiddleware.RequireAuth())
	{
		allocations.GET("", cfg.AllocationHandler.List)
		allocations.GET("/overdue", authorization.RequireStaff(), cfg.AllocationHandler.ListOverdue)
		allocations.POST("/:id/release", cfg.AllocationHandler.Release)
		allocations.POST("/:id/extend", cfg.AllocationHandler.Extend)
	}
}
