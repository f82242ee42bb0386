package installment

import (
	"github.com/gin-gonic/gin"

	"agencydesk/internal/middleware"
)

// RegisterRoutes registers installment routes. Claiming is open to any
// authenticated actor (the service enforces project assignment); the
// approval boundary is admin-only.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	insts := r.Group("/installments")
	{
		insts.POST("/:id/request-payment", handler.RequestPayment)
		insts.GET("/pending-approval", middleware.AdminOnly(), handler.ListPendingApproval)
		insts.POST("/:id/approve", middleware.AdminOnly(), handler.Approve)
		insts.POST("/:id/reject", middleware.AdminOnly(), handler.Reject)
	}
}
