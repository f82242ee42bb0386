package project

import "github.com/gin-gonic/gin"

// RegisterRoutes registers project read routes.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	projects := r.Group("/projects")
	{
		projects.GET("", handler.List)
		projects.GET("/:id", handler.Get)
		projects.GET("/:id/installments", handler.ListInstallments)
	}
}
