package wallet

import "github.com/gin-gonic/gin"

// RegisterRoutes registers wallet routes.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	w := r.Group("/wallet")
	{
		w.GET("", handler.GetWallet)
		w.GET("/transactions", handler.ListTransactions)
	}
}
