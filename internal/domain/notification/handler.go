package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"agencydesk/internal/middleware"
	"agencydesk/internal/pkg/response"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// List handles GET /api/v1/notifications
func (h *Handler) List(c *gin.Context) {
	actorID := middleware.ActorID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	list, err := h.repo.ListByActor(c.Request.Context(), actorID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	unread, err := h.repo.CountUnread(c.Request.Context(), actorID)
	if err != nil {
		unread = 0
	}

	response.Success(c, http.StatusOK, gin.H{
		"notifications": list,
		"unread_count":  unread,
	})
}

// MarkRead handles PATCH /api/v1/notifications/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	err := h.repo.MarkAsRead(c.Request.Context(), c.Param("id"), middleware.ActorID(c))
	if err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllRead handles PATCH /api/v1/notifications/read-all
func (h *Handler) MarkAllRead(c *gin.Context) {
	if err := h.repo.MarkAllAsRead(c.Request.Context(), middleware.ActorID(c)); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
