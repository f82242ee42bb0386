package lead

import (
	"github.com/gin-gonic/gin"

	"agencydesk/internal/middleware"
)

// RegisterRoutes registers lead routes. Creation and transitions are
// open to sales actors and admins; reassignment is admin-only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leads := r.Group("/leads")
	{
		leads.GET("", handler.List)
		leads.GET("/stats", handler.Stats)
		leads.GET("/:id", handler.Get)
		leads.POST("", middleware.RequireRole("sales", "admin"), handler.Create)
		leads.POST("/:id/transition", middleware.RequireRole("sales", "admin"), handler.Transition)
		leads.POST("/:id/convert", middleware.RequireRole("sales", "admin"), handler.Convert)
		leads.PATCH("/:id/assign", middleware.AdminOnly(), handler.Assign)
	}
}
