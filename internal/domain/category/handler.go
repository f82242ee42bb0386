package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"agencydesk/internal/pkg/response"
)

// Handler handles category HTTP requests.
type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /api/v1/categories
func (h *Handler) List(c *gin.Context) {
	cats, err := h.repo.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, cats)
}
