package notification

import "github.com/gin-gonic/gin"

// RegisterRoutes registers notification routes.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	n := r.Group("/notifications")
	{
		n.GET("", handler.List)
		n.PATCH("/:id/read", handler.MarkRead)
		n.PATCH("/read-all", handler.MarkAllRead)
	}
}
