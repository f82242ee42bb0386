package stats

import "github.com/gin-gonic/gin"

// RegisterRoutes registers dashboard routes.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	s := r.Group("/stats")
	{
		s.GET("", handler.Snapshot)
		s.GET("/ws", handler.ServeWS)
	}
}
