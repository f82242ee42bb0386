package category

import "github.com/gin-gonic/gin"

// RegisterRoutes registers category routes.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/categories", handler.List)
}
