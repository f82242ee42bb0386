package wallet

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agencydesk/internal/middleware"
	"agencydesk/internal/pkg/response"
)

// Handler serves the read-only earnings views.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetWallet handles GET /api/v1/wallet
func (h *Handler) GetWallet(c *gin.Context) {
	wallet, err := h.service.GetOrCreateWallet(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, wallet)
}

// ListTransactions handles GET /api/v1/wallet/transactions
func (h *Handler) ListTransactions(c *gin.Context) {
	txns, err := h.service.ListTransactions(c.Request.Context(), middleware.ActorID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, txns)
}
