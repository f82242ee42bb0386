package actor

import "github.com/gin-gonic/gin"

// RegisterPublicRoutes registers unauthenticated auth routes.
func RegisterPublicRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/auth/login", handler.Login)
}

// RegisterRoutes registers authenticated actor routes.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/actors", handler.ListByRole)
}
