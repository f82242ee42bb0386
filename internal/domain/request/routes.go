package request

import "github.com/gin-gonic/gin"

// RegisterRoutes registers request routes. Any authenticated actor may
// exchange requests; the service enforces sender/recipient rules.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	requests := r.Group("/requests")
	{
		requests.GET("", handler.List)
		requests.GET("/:id", handler.Get)
		requests.POST("", handler.Create)
		requests.POST("/:id/send", handler.Send)
		requests.POST("/:id/respond", handler.Respond)
	}
}
